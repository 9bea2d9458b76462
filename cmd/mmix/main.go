/*
 * mmixgo - assemble-and-run front end.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package main

import (
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"mmixgo/asm"
	"mmixgo/mmo"
	"mmixgo/util/hex"
	"mmixgo/util/logger"
	"mmixgo/vm"
)

var Logger *slog.Logger

func main() {
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optObj := getopt.StringLong("object", 'o', "", "Write assembled .mmo object file and exit")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	args := getopt.Args()
	if *optHelp || len(args) != 1 {
		getopt.Usage()
		os.Exit(0)
	}
	source := args[0]

	var file *os.File
	if *optLogFile != "" {
		file, _ = os.Create(*optLogFile)
	}
	mask, err := logger.ParseFilter(os.Getenv("MMIX_LOG"))
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	handler := logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel, AddSource: false}, mask)
	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	src, err := os.ReadFile(source)
	if err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}

	a := asm.NewAssembler()
	img, err := a.Assemble(string(src))
	if err != nil {
		Logger.Error("assembly failed", "error", err)
		os.Exit(1)
	}

	if *optObj != "" {
		out, err := os.Create(*optObj)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
		defer out.Close()
		if err := mmo.Write(out, img); err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
		return
	}

	m := vm.NewMachine(os.Stdout)
	m.LoadImage(img)

	if handler.FacilityEnabled(logger.Trace) {
		m.TraceInstructions = func(pc uint64, inst vm.Instruction) {
			Logger.Debug("exec", "pc", hex.Octa(pc), "op", hex.Byte(inst.Op), "x", inst.X, "y", inst.Y, "z", inst.Z)
		}
	}
	if handler.FacilityEnabled(logger.Trap) {
		m.TraceTraps = func(y, z byte) {
			Logger.Debug("trap", "y", hex.Byte(y), "z", hex.Byte(z))
		}
	}

	if err := m.Run(); err != nil {
		Logger.Error("execution faulted", "error", err)
		os.Exit(1)
	}
	os.Exit(int(m.ExitCode))
}
