package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/knowgraph/semcore/internal/render"
	"github.com/knowgraph/semcore/pkg/graph"
)

var (
	queryFile string
	askSubj   string
	askPred   string
	askObj    string
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Ask whether (subject, predicate, object) holds in a file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(queryFile, "")
		if err != nil {
			return err
		}

		subj, err := internTerm(s, askSubj)
		if err != nil {
			return err
		}
		pred, err := internTerm(s, askPred)
		if err != nil {
			return err
		}
		obj, err := internTerm(s, askObj)
		if err != nil {
			return err
		}

		matched, err := s.Ask(subj, pred, obj)
		if err != nil {
			return fmt.Errorf("ask: %w", err)
		}

		r, err := render.New("ask", render.DefaultAskTemplate)
		if err != nil {
			return err
		}
		out, err := r.Render(render.AskResult{Subject: subj, Predicate: pred, Object: obj, Matched: matched})
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

var (
	materializePred string
	materializeObj  string
)

var materializeCmd = &cobra.Command{
	Use:   "materialize",
	Short: "List subjects matching (*, predicate, object) in a file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(queryFile, "")
		if err != nil {
			return err
		}

		pred, err := internTerm(s, materializePred)
		if err != nil {
			return err
		}
		obj := graph.WildcardID
		if materializeObj != "" {
			obj, err = internTerm(s, materializeObj)
			if err != nil {
				return err
			}
		}

		subjects, err := s.MaterializeSubjects(pred, obj)
		if err != nil {
			return fmt.Errorf("materialize: %w", err)
		}

		r, err := render.New("materialize", render.DefaultMaterializeTemplate)
		if err != nil {
			return err
		}
		out, err := r.Render(render.MaterializeResult{Predicate: pred, Object: obj, Subjects: subjects})
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

// internTerm interns a term against s, treating the empty string as the
// wildcard id rather than an error.
func internTerm(s *graph.Store, term string) (uint32, error) {
	if term == "" {
		return graph.WildcardID, nil
	}
	id, err := s.Intern([]byte(term))
	if err != nil {
		return 0, fmt.Errorf("intern %q: %w", term, err)
	}
	return id, nil
}

func init() {
	askCmd.Flags().StringVar(&queryFile, "file", "", "N-Triples-style file to query")
	askCmd.Flags().StringVar(&askSubj, "subject", "", "subject IRI")
	askCmd.Flags().StringVar(&askPred, "predicate", "", "predicate IRI")
	askCmd.Flags().StringVar(&askObj, "object", "", "object IRI (omit for wildcard)")
	rootCmd.AddCommand(askCmd)

	materializeCmd.Flags().StringVar(&queryFile, "file", "", "N-Triples-style file to query")
	materializeCmd.Flags().StringVar(&materializePred, "predicate", "", "predicate IRI")
	materializeCmd.Flags().StringVar(&materializeObj, "object", "", "object IRI (omit for wildcard)")
	rootCmd.AddCommand(materializeCmd)
}
