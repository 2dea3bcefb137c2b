package model

import (
	"strings"
)

// Genre 电影类型
type Genre string

const (
	GenreAction      Genre = "Action"
	GenreComedy      Genre = "Comedy"
	GenreDrama       Genre = "Drama"
	GenreHorror      Genre = "Horror"
	GenreSciFi       Genre = "SciFi"
	GenreRomance     Genre = "Romance"
	GenreThriller    Genre = "Thriller"
	GenreDocumentary Genre = "Documentary"
	GenreAnimation   Genre = "Animation"
	GenreAdventure   Genre = "Adventure"
)

// Genres 全部类型，顺序即枚举顺序
var Genres = []Genre{
	GenreAction,
	GenreComedy,
	GenreDrama,
	GenreHorror,
	GenreSciFi,
	GenreRomance,
	GenreThriller,
	GenreDocumentary,
	GenreAnimation,
	GenreAdventure,
}

// Valid 是否为已知类型
func (g Genre) Valid() bool {
	for _, known := range Genres {
		if g == known {
			return true
		}
	}
	return false
}

func (g Genre) String() string {
	return string(g)
}

// genreSeparator 存储时的分隔符
const genreSeparator = ","

// JoinGenres 序列化为分隔字符串
func JoinGenres(genres []Genre) string {
	parts := make([]string, 0, len(genres))
	for _, g := range genres {
		parts = append(parts, string(g))
	}
	return strings.Join(parts, genreSeparator)
}

// ParseGenreList 将分隔字符串展开为切片，忽略空白项
func ParseGenreList(s string) []Genre {
	if s == "" {
		return []Genre{}
	}
	res := []Genre{}
	parts := strings.Split(s, genreSeparator)
	for _, p := range parts {
		if g := strings.TrimSpace(p); g != "" {
			res = append(res, Genre(g))
		}
	}
	return res
}
