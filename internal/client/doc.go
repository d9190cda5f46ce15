// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// It wires the local session store, the backend adapter, the key custodian
// and the client services into a single process lifecycle, and runs the
// interactive session in which the re-authentication monitor may lock the
// vault and ask for the master password again.
package client
