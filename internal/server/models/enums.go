// Package models holds the domain records shared by repositories, services
// and the HTTP layer, together with the closed enumerations they use.
package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownEnumValue = errors.New("unknown enum value")

type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
)

var roles = []Role{RoleSuperAdmin, RoleAdmin, RoleUser}

func ParseRole(s string) (Role, error) {
	return parseEnum(s, roles)
}

type Color string

const (
	ColorPink   Color = "pink"
	ColorBlack  Color = "black"
	ColorWhite  Color = "white"
	ColorYellow Color = "yellow"
)

var colors = []Color{ColorPink, ColorBlack, ColorWhite, ColorYellow}

func ParseColor(s string) (Color, error) {
	return parseEnum(s, colors)
}

type Size string

const (
	SizeXS  Size = "xs"
	SizeS   Size = "s"
	SizeM   Size = "m"
	SizeL   Size = "l"
	SizeXL  Size = "xl"
	SizeXXL Size = "xxl"
)

var sizes = []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL}

func ParseSize(s string) (Size, error) {
	return parseEnum(s, sizes)
}

// Colors and Sizes list the accepted values in declaration order.
func Colors() []Color { return append([]Color(nil), colors...) }
func Sizes() []Size   { return append([]Size(nil), sizes...) }

func parseEnum[T ~string](s string, allowed []T) (T, error) {
	for _, v := range allowed {
		if string(v) == s {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownEnumValue, s, joinEnum(allowed))
}

func joinEnum[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
