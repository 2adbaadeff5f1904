package utils

import (
	"golang.org/x/exp/constraints"
)

func IIf[T any](test bool, ifTrue, ifFalse T) T {
	if test {
		return ifTrue
	} else {
		return ifFalse
	}
}

func Max[T constraints.Ordered](a, b T) T {
	return IIf(a >= b, a, b)
}

func MaxOf[T constraints.Ordered](col []T, empty T) T {
	if len(col) == 0 {
		return empty
	}

	result := col[0]
	for _, v := range col[1:] {
		result = Max(result, v)
	}
	return result
}
