// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the ledgerctl command: key management and one
// subcommand per ledger operation.
//
//	ledgerctl [global flags] keygen [-force] [-plain]
//	ledgerctl [global flags] whoami [-copy]
//	ledgerctl [global flags] create <id> <name>
//	ledgerctl [global flags] transfer <sender-id> <receiver-id> <amount>
//	ledgerctl [global flags] remove [-yes] <id>
//	ledgerctl [global flags] get <id>
//	ledgerctl [global flags] credits [identity]
//	ledgerctl [global flags] version
package client
