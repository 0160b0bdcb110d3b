/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package schemas

// New returns a node type registry builder.
func New() IRegistryBuilder {
	return newRegistry()
}
