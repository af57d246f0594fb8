package cli

import (
	"fmt"
	"os"
	"time"

	ps "github.com/mitchellh/go-ps"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage reachable
	if err := checkStorageReachable(ctx); err != nil {
		fmt.Printf("FAIL  storage reachable\n      %v\n", err)
		hasError = true
	} else {
		fmt.Printf("ok    storage reachable (%s)\n", ctx.Store.GetConfigPath())
	}

	// Check 2: no other planora process against the same store
	if err := checkDuplicateProcess(); err != nil {
		fmt.Printf("warn  concurrent process\n      %v\n", err)
	} else {
		fmt.Printf("ok    no concurrent planora process\n")
	}

	// Check 3: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("FAIL  clock/timezone\n      %v\n", err)
		hasError = true
	} else {
		fmt.Printf("ok    clock/timezone\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkStorageReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	if _, err := ctx.Store.ListTrips(); err != nil {
		return fmt.Errorf("store loaded but unreadable: %w", err)
	}
	return nil
}

// checkDuplicateProcess warns when another planora process is running. The
// stores are not safe for concurrent writers sharing one path.
func checkDuplicateProcess() error {
	processes, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("could not list processes: %w", err)
	}

	self := os.Getpid()
	for _, p := range processes {
		if p.Pid() != self && p.Executable() == "planora" {
			return fmt.Errorf("another planora process is running (pid %d); concurrent writes to the same store are unsupported", p.Pid())
		}
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock reports %s, which looks wrong", now.Format(time.RFC3339))
	}
	if _, offset := now.Zone(); offset < -14*3600 || offset > 14*3600 {
		return fmt.Errorf("timezone offset %d seconds is out of range", offset)
	}
	return nil
}
