package facelet

import "fmt"

var (
	ErrInvalidLength  = fmt.Errorf("facelet: string must be 54 characters")
	ErrInvalidColor   = fmt.Errorf("facelet: invalid color character")
	ErrInvalidCounts  = fmt.Errorf("facelet: each color must appear exactly 9 times")
	ErrInvalidCenters = fmt.Errorf("facelet: center stickers must match their own face")
	ErrNotACube       = fmt.Errorf("facelet: string does not describe a physically assemblable cube")
	ErrUnsolvable     = fmt.Errorf("facelet: cube state has an invalid parity or orientation")
)
