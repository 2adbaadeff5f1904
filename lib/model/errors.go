package model

import "github.com/pkg/errors"

var ErrUnknownRegion = errors.New("unknown region")
