/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package ndl

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrNameError = errors.New("name error")

func ErrName(msg string, args ...any) error {
	return EnrichError(ErrNameError, msg, args...)
}

var ErrLinearizationError = errors.New("linearization error")

func ErrLinearization(msg string, args ...any) error {
	return EnrichError(ErrLinearizationError, msg, args...)
}

var ErrTypeError = errors.New("type error")

func ErrType(msg string, args ...any) error {
	return EnrichError(ErrTypeError, msg, args...)
}

var ErrPatchError = errors.New("patch error")

func ErrPatch(msg string, args ...any) error {
	return EnrichError(ErrPatchError, msg, args...)
}

var ErrAPIError = errors.New("api error")

func ErrAPI(msg string, args ...any) error {
	return EnrichError(ErrAPIError, msg, args...)
}

var ErrInternalError = errors.New("internal error")

func ErrInternal(msg string, args ...any) error {
	return EnrichError(ErrInternalError, msg, args...)
}

func ErrObjectNotFound(o FQON) error {
	return ErrName("object «%v» not known", o)
}

func ErrMemberNotFound(o FQON, member string) error {
	return ErrAPI("object «%v» has no member «%s»", o, member)
}
