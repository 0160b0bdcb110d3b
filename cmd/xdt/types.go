/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 * @author Alisher Nurmanov
 */

package main

type xdtParams struct {
	Output   string
	Progress bool
}
