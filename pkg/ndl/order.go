/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package ndl

import "math"

// Logical time of a view. Issued monotonically: loading commits at 0, every
// applied patch bumps the view time by one.
type Order uint64

// Queries at Latest observe the view's current time.
const Latest Order = math.MaxUint64
