package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "date only", input: `"1970-01-01"`, want: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339", input: `"1943-02-05T10:30:00Z"`, want: time.Date(1943, 2, 5, 10, 30, 0, 0, time.UTC)},
		{name: "null", input: `null`},
		{name: "garbage", input: `"05/02/1943"`, wantErr: true},
		{name: "number", input: `19430205`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.True(t, tt.want.Equal(d.Time), "got %v", d.Time)
		})
	}
}

func TestDate_InStruct(t *testing.T) {
	var req struct {
		DateOfBirth Date `json:"dateOfBirth"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"dateOfBirth":"1940-04-25"}`), &req))
	require.Equal(t, 1940, req.DateOfBirth.Year())
	require.Equal(t, time.April, req.DateOfBirth.Month())
}
