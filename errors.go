package setonce

import "errors"

// ErrAlreadySet is returned when a write is attempted on a cell (or a Map key)
// that has already been written. Losing a write race is the expected way to
// observe it; the winner's value can be read with Get.
var ErrAlreadySet = errors.New("setonce: value cannot be set twice")
