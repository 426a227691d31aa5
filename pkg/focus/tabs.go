package focus

import "github.com/goliatone/go-formkit/pkg/errs"

const opCalcNewTabIndex = "calcNewTabIndex"

// Navigation keys understood by CalcNewTabIndex. Names follow
// KeyboardEvent.key values.
const (
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
	KeyHome       = "Home"
	KeyEnd        = "End"
)

// CalcNewTabIndex returns the index focused after key is pressed on the tab
// at index out of total tabs. Arrow keys wrap around, Home and End jump to
// the ends and any other key leaves index unchanged. A negative index or a
// non-positive total fails with errs.ErrInvalidArgument; index >= total
// fails with errs.ErrIndexOutOfRange.
func (m *Manager) CalcNewTabIndex(key string, index, total int) (int, error) {
	if err := validateTabState(index, total); err != nil {
		m.logger.Debug().Str("op", opCalcNewTabIndex).Err(err).Msg("error")
		return 0, err
	}

	m.logger.Debug().Str("op", opCalcNewTabIndex).
		Str("key", key).Int("index", index).Int("total", total).
		Msg("running")

	next := index
	switch key {
	case KeyArrowRight:
		next = index + 1
		if next == total {
			next = 0
		}
	case KeyArrowLeft:
		next = index - 1
		if index == 0 {
			next = total - 1
		}
	case KeyHome:
		next = 0
	case KeyEnd:
		next = total - 1
	}

	m.logger.Debug().Str("op", opCalcNewTabIndex).Int("result", next).Msg("returning")
	return next, nil
}

func validateTabState(index, total int) error {
	if index < 0 {
		return errs.Invalid(opCalcNewTabIndex, "index", "index must be a non-negative number")
	}
	if total <= 0 {
		return errs.Invalid(opCalcNewTabIndex, "total", "total must be a positive number")
	}
	if index >= total {
		return errs.OutOfRange(opCalcNewTabIndex, "index", "index must be less than total")
	}
	return nil
}
