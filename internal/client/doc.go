// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line client runtime.
//
// It restores or opens a session, prints one folder listing, then keeps the
// master key ring and the keypair in sync until the process is signalled.
package client
