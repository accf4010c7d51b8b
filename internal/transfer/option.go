package transfer

import "fmt"

// Option is a quantity choice offered while hovering a destination.
type Option int

const (
	OptionOne Option = iota
	OptionTen
	OptionHundred
	OptionThousand
	OptionAll // everything snapshotted at drag start
	OptionMax // as much as the destination fits
)

var fixedOptions = []struct {
	opt Option
	qty uint64
}{
	{OptionOne, 1},
	{OptionTen, 10},
	{OptionHundred, 100},
	{OptionThousand, 1000},
}

// String returns the label drawn on the option button.
func (o Option) String() string {
	switch o {
	case OptionOne:
		return "1"
	case OptionTen:
		return "10"
	case OptionHundred:
		return "100"
	case OptionThousand:
		return "1000"
	case OptionAll:
		return "ALL"
	case OptionMax:
		return "MAX"
	default:
		return fmt.Sprintf("Option(%d)", int(o))
	}
}

// options returns the choices for a drag of available units onto a
// destination that fits fittable of them. It is empty when nothing fits.
func options(available, fittable uint64) []Option {
	if fittable == 0 || available == 0 {
		return nil
	}
	bound := min(available, fittable)
	var out []Option
	for _, f := range fixedOptions {
		if f.qty <= bound {
			out = append(out, f.opt)
		}
	}
	if fittable >= available {
		out = append(out, OptionAll)
	} else {
		out = append(out, OptionMax)
	}
	return out
}

// quantity resolves an option to a unit count.
func (o Option) quantity(available, fittable uint64) uint64 {
	for _, f := range fixedOptions {
		if f.opt == o {
			return f.qty
		}
	}
	switch o {
	case OptionAll:
		return available
	case OptionMax:
		return min(available, fittable)
	}
	return 0
}
