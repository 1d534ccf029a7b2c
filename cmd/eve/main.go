// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command eve lays out and runs dialogs from layout and sheet
// declaration files.
//
//	eve layout font.eve font.adm
//	eve run font.eve font.adm 'enter:column0/edit_text0="Mono"' click:row4/button1
//	eve watch font.eve font.adm
//	eve history font
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
