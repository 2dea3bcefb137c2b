// Package validation 请求校验：基于 validator/v10 的结构体标签和自定义规则，
// 失败时返回带字段明细的 model.Invalid。
package validation

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/user/moviestore/internal/model"
)

// MinMovieYear 最早的电影年份
const MinMovieYear = 1888

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]*$`)

// Validator 请求校验器
type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

// New 创建校验器并注册自定义规则
func New() *Validator {
	return NewWithClock(time.Now)
}

// NewWithClock 使用指定时钟，年份和年龄规则依赖当前时间
func NewWithClock(now func() time.Time) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	val := &Validator{v: v, now: now}

	// 错误明细使用 json 字段名
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// model.Date 按 time.Time 校验
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(model.Date); ok {
			return d.Time
		}
		return nil
	}, model.Date{})

	rules := map[string]validator.Func{
		"password":     validPassword,
		"username":     validUsername,
		"genre":        validGenre,
		"movie_year":   val.validMovieYear,
		"director_age": val.validDirectorAge,
		"birthdate":    val.validBirthDate,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register validation %s: %v", tag, err))
		}
	}
	return val
}

// Struct 校验请求，成功返回 nil
func (val *Validator) Struct(ctx context.Context, s any) error {
	err := val.v.StructCtx(ctx, s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fieldName(fe)
		if _, exists := fields[name]; !exists {
			fields[name] = val.message(fe)
		}
	}
	return model.Invalid(fields)
}

// fieldName 取最后一级字段名，例如 favoriteGenres[2]
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.LastIndex(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func (val *Validator) message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s items", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at most %s items", fe.Param())
		}
		return fmt.Sprintf("cannot exceed %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "eqfield":
		return "passwords do not match"
	case "unique":
		return "must not contain duplicates"
	case "password":
		return "must contain an uppercase letter, a lowercase letter, a digit and a special character"
	case "username":
		return "can only contain letters, numbers and underscores"
	case "genre":
		return fmt.Sprintf("'%v' is not a valid movie genre", fe.Value())
	case "movie_year":
		return fmt.Sprintf("must be between %d and %d", MinMovieYear, val.now().Year())
	case "director_age":
		return "director must be between 10 and 100 years old"
	case "birthdate":
		return "must be a date in the past"
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}

// validPassword 至少包含大写、小写、数字和特殊字符各一个
func validPassword(fl validator.FieldLevel) bool {
	var upper, lower, digit, special bool
	for _, r := range fl.Field().String() {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			special = true
		}
	}
	return upper && lower && digit && special
}

func validUsername(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

func validGenre(fl validator.FieldLevel) bool {
	return model.Genre(fl.Field().String()).Valid()
}

func (val *Validator) validMovieYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	return year >= MinMovieYear && year <= int64(val.now().Year())
}

// validDirectorAge 出生日期需在 100 年前到 10 年前之间（不含端点）
func (val *Validator) validDirectorAge(fl validator.FieldLevel) bool {
	dob, ok := fl.Field().Interface().(time.Time)
	if !ok || dob.IsZero() {
		return false
	}
	now := val.now()
	return dob.Before(now.AddDate(-10, 0, 0)) && dob.After(now.AddDate(-100, 0, 0))
}

func (val *Validator) validBirthDate(fl validator.FieldLevel) bool {
	dob, ok := fl.Field().Interface().(time.Time)
	return ok && !dob.IsZero() && dob.Before(val.now())
}
