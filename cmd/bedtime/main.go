package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opariy/bedtime-story-generator/internal/config"
	"github.com/opariy/bedtime-story-generator/internal/critique"
	"github.com/opariy/bedtime-story-generator/internal/profile"
	"github.com/opariy/bedtime-story-generator/internal/render"
	"github.com/opariy/bedtime-story-generator/internal/rubric"
	"github.com/opariy/bedtime-story-generator/internal/session"
	"github.com/opariy/bedtime-story-generator/internal/storyteller"
)

func main() {
	root := &cobra.Command{
		Use:   "bedtime",
		Short: "Rubric-guided bedtime story generation",
	}

	root.AddCommand(newTellCmd())
	root.AddCommand(newSuggestCmd())
	root.AddCommand(newRubricCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// tellFlags holds the flag values for the tell command.
type tellFlags struct {
	configPath string
	provider   string
	model      string
	profName   string
	maxIter    int
	noClassify bool
	asJSON     bool
	asMarkdown bool
	debug      bool
}

func newTellCmd() *cobra.Command {
	var flags tellFlags
	cmd := &cobra.Command{
		Use:   "tell [topic]",
		Short: "Generate a story and revise it until the judge is satisfied",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic := ""
			if len(args) == 1 {
				topic = args[0]
			}
			return runTell(cmd, topic, flags)
		},
	}
	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to config file")
	cmd.Flags().StringVar(&flags.provider, "provider", "", "text-generation provider: openai, anthropic, or google")
	cmd.Flags().StringVar(&flags.model, "model", "", "model name for the chosen provider")
	cmd.Flags().StringVar(&flags.profName, "profile", "", "storytelling profile: classic, nature, dreamy, or silly")
	cmd.Flags().IntVar(&flags.maxIter, "max-iterations", 0, "cap on judge/revise cycles (default from config)")
	cmd.Flags().BoolVar(&flags.noClassify, "no-classify", false, "skip topic safety classification")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "print the full session document as JSON")
	cmd.Flags().BoolVar(&flags.asMarkdown, "markdown", false, "print a Markdown session summary")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "print prompts to stderr")
	return cmd
}

func runTell(cmd *cobra.Command, topic string, flags tellFlags) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	applyFlags(&cfg, flags)

	prof, err := profile.Load(cfg.Profile)
	if err != nil {
		return err
	}
	client, err := storyteller.New(storyteller.Options{
		Provider: cfg.Provider,
		Model:    cfg.Model,
		Debug:    flags.debug,
	}, prof)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if topic == "" {
		topic, err = collectTopic(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), client, cfg.Suggestions)
		if err != nil {
			return err
		}
	} else if !flags.noClassify {
		cls, err := client.Classify(ctx, topic)
		if err != nil {
			return err
		}
		if cls != storyteller.ClassSafe {
			return fmt.Errorf("topic classified as %s; pick a gentler topic or rerun without one to get suggestions", cls)
		}
	}

	ctrl := &session.Controller{
		Generator:     client,
		Judge:         client,
		Reviser:       client,
		Catalog:       rubric.Default(),
		MaxIterations: cfg.MaxIterations,
		Observer: func(it session.Iteration) {
			fmt.Fprintf(cmd.ErrOrStderr(), "iteration %d: %d entries parsed, %d below max, %d unmatched\n",
				it.N, len(it.Entries), countBelow(it), it.Unmatched)
		},
	}

	sess, err := ctrl.Run(ctx, topic)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case flags.asJSON:
		b, err := render.JSON(sess)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(b))
	case flags.asMarkdown:
		fmt.Fprint(out, render.Markdown(sess))
	default:
		fmt.Fprintf(out, "\n%s\n", sess.Story)
		if sess.Outcome == session.OutcomeMaxIterations {
			fmt.Fprintf(cmd.ErrOrStderr(), "note: iteration budget exhausted before the judge was satisfied\n")
		}
	}

	// A convergence with nothing parsed means the judge's verdict was
	// unreadable, not that the story is perfect. Say so.
	if last := sess.Iterations[len(sess.Iterations)-1]; sess.Outcome == session.OutcomeConverged && len(last.Entries) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: converged with no parseable judge output; the story was not actually scored")
	}
	return nil
}

func applyFlags(cfg *config.Config, flags tellFlags) {
	if flags.provider != "" {
		cfg.Provider = flags.provider
	}
	if flags.model != "" {
		cfg.Model = flags.model
	}
	if flags.profName != "" {
		cfg.Profile = flags.profName
	}
	if flags.maxIter > 0 {
		cfg.MaxIterations = flags.maxIter
	}
}

func countBelow(it session.Iteration) int {
	n := 0
	for _, e := range it.Entries {
		if e.Score < critique.MaxScore {
			n++
		}
	}
	return n
}

func newSuggestCmd() *cobra.Command {
	var flags tellFlags
	var count int
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest safe bedtime story topics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(flags.configPath)
			if err != nil {
				return err
			}
			applyFlags(&cfg, flags)
			if count > 0 {
				cfg.Suggestions = count
			}
			prof, err := profile.Load(cfg.Profile)
			if err != nil {
				return err
			}
			client, err := storyteller.New(storyteller.Options{
				Provider: cfg.Provider,
				Model:    cfg.Model,
				Debug:    flags.debug,
			}, prof)
			if err != nil {
				return err
			}
			topics, err := client.Suggest(cmd.Context(), cfg.Suggestions)
			if err != nil {
				return err
			}
			for i, topic := range topics {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, topic)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to config file")
	cmd.Flags().StringVar(&flags.provider, "provider", "", "text-generation provider")
	cmd.Flags().StringVar(&flags.model, "model", "", "model name")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of topics to suggest")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "print prompts to stderr")
	return cmd
}

func newRubricCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rubric",
		Short: "Print the evaluation rubric",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, c := range rubric.Default() {
				fmt.Fprintf(out, "%s\n  %s\n", c.Key, c.Description)
				for n := 1; n <= rubric.LevelCount; n++ {
					fmt.Fprintf(out, "    %d: %s\n", n, c.Level(n))
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}
