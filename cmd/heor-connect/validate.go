package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/heorconnect/heor-connect/internal/navtree"
	"github.com/heorconnect/heor-connect/internal/router"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file...]",
		Short: "Check taxonomy files (all built-in taxonomies when no file is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0

			if len(args) == 0 {
				for _, name := range navtree.Builtin() {
					if !reportValidation(out, name, validateTree(navtree.Load(name))) {
						failed++
					}
				}
			} else {
				for _, file := range args {
					if !reportValidation(out, file, validateTree(navtree.LoadFile(file))) {
						failed++
					}
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d taxonomy(ies) failed validation", failed)
			}
			return nil
		},
	}
}

// validateTree runs the route check on top of the structural checks done
// while loading.
func validateTree(tree *navtree.Tree, err error) error {
	if err != nil {
		return err
	}
	return router.CheckRoutes(tree)
}

func reportValidation(w io.Writer, name string, err error) bool {
	if err == nil {
		fmt.Fprintf(w, "ok    %s\n", name)
		return true
	}
	fmt.Fprintf(w, "FAIL  %s\n", name)
	for _, p := range problems(err) {
		fmt.Fprintf(w, "      - %v\n", p)
	}
	return false
}

// problems flattens err into the individual findings worth printing.
func problems(err error) []error {
	var verr *navtree.ValidationError
	if errors.As(err, &verr) {
		return verr.Problems
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
