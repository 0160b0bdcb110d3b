/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package schemas

import (
	"strconv"
	"testing"
)

func TestSelectionModeTrimString(t *testing.T) {
	tests := []struct {
		name string
		m    SelectionMode
		want string
	}{
		{name: "basic", m: SelectionMode_One, want: "One"},
		{name: "basic", m: SelectionMode_AnyCombination, want: "AnyCombination"},
		{name: "basic", m: SelectionMode_OneOfEach, want: "OneOfEach"},
		{name: "basic", m: SelectionMode_ManyOfOne, want: "ManyOfOne"},
		{name: "basic", m: SelectionMode_AnyOfOne, want: "AnyOfOne"},
		{name: "out of range", m: SelectionMode_FakeLast + 1, want: (SelectionMode_FakeLast + 1).String()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TrimString(); got != tt.want {
				t.Errorf("%v.(SelectionMode).TrimString() = %v, want %v", tt.m, got, tt.want)
			}
		})
	}

	t.Run("100% cover SelectionMode.String()", func(t *testing.T) {
		const tested = SelectionMode_FakeLast + 1
		want := "SelectionMode(" + strconv.FormatInt(int64(tested), 10) + ")"
		got := tested.String()
		if got != want {
			t.Errorf("(SelectionMode_FakeLast + 1).String() = %v, want %v", got, want)
		}
	})
}
