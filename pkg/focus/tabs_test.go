package focus_test

import (
	"errors"
	"math"
	"testing"

	"github.com/goliatone/go-formkit/pkg/errs"
	"github.com/goliatone/go-formkit/pkg/focus"
)

func TestCalcNewTabIndex(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		index int
		total int
		want  int
	}{
		{name: "right", key: focus.KeyArrowRight, index: 1, total: 5, want: 2},
		{name: "right wraps", key: focus.KeyArrowRight, index: 4, total: 5, want: 0},
		{name: "left", key: focus.KeyArrowLeft, index: 3, total: 5, want: 2},
		{name: "left wraps", key: focus.KeyArrowLeft, index: 0, total: 5, want: 4},
		{name: "home", key: focus.KeyHome, index: 3, total: 5, want: 0},
		{name: "end", key: focus.KeyEnd, index: 1, total: 5, want: 4},
		{name: "pass through", key: "Space", index: 2, total: 5, want: 2},
		{name: "empty key", key: "", index: 2, total: 5, want: 2},
		{name: "single tab right", key: focus.KeyArrowRight, index: 0, total: 1, want: 0},
		{name: "single tab left", key: focus.KeyArrowLeft, index: 0, total: 1, want: 0},
		{name: "case sensitive", key: "arrowright", index: 0, total: 3, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := focus.CalcNewTabIndex(tc.key, tc.index, tc.total)
			if err != nil {
				t.Fatalf("CalcNewTabIndex: %v", err)
			}
			if got != tc.want {
				t.Fatalf("CalcNewTabIndex(%q, %d, %d) = %d, want %d", tc.key, tc.index, tc.total, got, tc.want)
			}
		})
	}
}

func TestCalcNewTabIndex_StaysInRange(t *testing.T) {
	keys := []string{focus.KeyArrowRight, focus.KeyArrowLeft, focus.KeyHome, focus.KeyEnd, "Tab"}
	for total := 1; total <= 7; total++ {
		for index := 0; index < total; index++ {
			for _, key := range keys {
				got, err := focus.CalcNewTabIndex(key, index, total)
				if err != nil {
					t.Fatalf("CalcNewTabIndex(%q, %d, %d): %v", key, index, total, err)
				}
				if got < 0 || got >= total {
					t.Fatalf("CalcNewTabIndex(%q, %d, %d) = %d out of range", key, index, total, got)
				}
			}
		}
	}
}

func TestCalcNewTabIndex_LargeTotals(t *testing.T) {
	cases := []struct {
		key   string
		index int
		want  int
	}{
		{key: focus.KeyArrowLeft, index: math.MaxInt - 1, want: math.MaxInt - 2},
		{key: focus.KeyArrowLeft, index: 0, want: math.MaxInt - 1},
		{key: focus.KeyArrowRight, index: math.MaxInt - 1, want: 0},
		{key: focus.KeyArrowRight, index: math.MaxInt - 2, want: math.MaxInt - 1},
		{key: focus.KeyEnd, index: 0, want: math.MaxInt - 1},
	}
	for _, tc := range cases {
		got, err := focus.CalcNewTabIndex(tc.key, tc.index, math.MaxInt)
		if err != nil {
			t.Fatalf("CalcNewTabIndex(%q, %d, MaxInt): %v", tc.key, tc.index, err)
		}
		if got != tc.want {
			t.Fatalf("CalcNewTabIndex(%q, %d, MaxInt) = %d, want %d", tc.key, tc.index, got, tc.want)
		}
	}
}

func TestCalcNewTabIndex_Validation(t *testing.T) {
	cases := []struct {
		name      string
		index     int
		total     int
		wantErr   error
		wantParam string
	}{
		{name: "negative index", index: -1, total: 5, wantErr: errs.ErrInvalidArgument, wantParam: "index"},
		{name: "zero total", index: 0, total: 0, wantErr: errs.ErrInvalidArgument, wantParam: "total"},
		{name: "negative total", index: 0, total: -3, wantErr: errs.ErrInvalidArgument, wantParam: "total"},
		{name: "index equals total", index: 5, total: 5, wantErr: errs.ErrIndexOutOfRange, wantParam: "index"},
		{name: "index above total", index: 9, total: 5, wantErr: errs.ErrIndexOutOfRange, wantParam: "index"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := focus.CalcNewTabIndex(focus.KeyArrowRight, tc.index, tc.total)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if param, _ := errs.Param(err); param != tc.wantParam {
				t.Fatalf("expected param %q, got %q", tc.wantParam, param)
			}
		})
	}
}
