/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package elements

import "errors"

// ErrNoRoot is returned by AddChildren when a root reference can not be
// established, i.e. a participating node was not produced by a registry
// factory and carries no type.
var ErrNoRoot = errors.New("no root can be established")
