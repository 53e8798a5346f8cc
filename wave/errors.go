// SPDX-License-Identifier: MIT

package wave

import "errors"

// ErrDomain indicates an invalid physical parameter or a geometry in which the
// amplitude is undefined (zero path length, all-dark screen).
var ErrDomain = errors.New("wave: parameter outside physical domain")
