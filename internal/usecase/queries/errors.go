package queries

import (
	"royal-stay/internal/infra"
	"royal-stay/internal/pkg/errs"
)

func notFound(err error, sentinel error, format string, args ...any) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Newf(sentinel, format, args...)
	}
	return errs.Wrapf(err, format, args...)
}
