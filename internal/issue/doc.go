// SPDX-License-Identifier: MPL-2.0

// Package issue provides structured, user-facing errors: what operation
// failed, which resource was involved, and suggestions for fixing it.
package issue
