package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/knowgraph/semcore/internal/render"
	"github.com/knowgraph/semcore/pkg/graph"
)

var (
	validateFile      string
	validateSubj      string
	validateClass     string
	validateRequired  []string
	validateTypePred  string
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check whether a subject conforms to a class + required-property shape.",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(validateFile, validateTypePred)
		if err != nil {
			return err
		}

		subj, err := internTerm(s, validateSubj)
		if err != nil {
			return err
		}
		class, err := internTerm(s, validateClass)
		if err != nil {
			return err
		}
		required := make([]uint32, len(validateRequired))
		for i, p := range validateRequired {
			id, err := internTerm(s, p)
			if err != nil {
				return err
			}
			required[i] = id
		}

		results, err := s.ValidateShapeBatch([]graph.ShapeCheck{{
			Subject: subj,
			Shape:   graph.Shape{TargetClass: class, RequiredProperties: required},
		}})
		if err != nil {
			return fmt.Errorf("validate: %w", err)
		}

		r, err := render.New("shape", render.DefaultShapeTemplate)
		if err != nil {
			return err
		}
		out, err := r.Render(render.ShapeResult{Subject: subj, Valid: results[0]})
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateFile, "file", "", "N-Triples-style file to validate against")
	validateCmd.Flags().StringVar(&validateSubj, "subject", "", "subject IRI")
	validateCmd.Flags().StringVar(&validateClass, "class", "", "target class IRI")
	validateCmd.Flags().StringSliceVar(&validateRequired, "required", nil, "required property IRIs (comma-separated)")
	validateCmd.Flags().StringVar(&validateTypePred, "type-predicate", "", "IRI used as the rdf:type-equivalent predicate")
	rootCmd.AddCommand(validateCmd)
}
