package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/praxislearn/praxis/internal/app"
	"github.com/praxislearn/praxis/internal/concepts"
	"github.com/praxislearn/praxis/internal/graph"
	"github.com/praxislearn/praxis/internal/tutor"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Manage unit graphs of related concepts",
}

var graphCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a unit graph",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		g, err := a.Repos.Graphs.CreateGraph(cmd.Context(), &concepts.UnitGraph{
			UserID: userID(cmd),
			Name:   args[0],
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created graph %q (%s).\n", g.Name, g.ID)
		return nil
	},
}

var graphInsertCmd = &cobra.Command{
	Use:   "insert <concept-name>",
	Short: "Insert a concept into a graph relative to an anchor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		graphName, _ := cmd.Flags().GetString("graph")
		anchorName, _ := cmd.Flags().GetString("anchor")
		asPrereq, _ := cmd.Flags().GetBool("prerequisite")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		user := userID(cmd)

		g, err := findGraphByName(ctx, a, user, graphName)
		if err != nil {
			return err
		}
		anchor, err := a.Repos.Concepts.FindByNormalizedName(ctx, user, concepts.NormalizeName(anchorName))
		if err != nil {
			return err
		}
		if anchor == nil {
			return fmt.Errorf("no concept named %q", anchorName)
		}

		relation := graph.RelationExtension
		if asPrereq {
			relation = graph.RelationPrerequisite
		}
		res, err := a.Inserter.Insert(ctx, graph.InsertRequest{
			UserID:   user,
			GraphID:  g.ID,
			AnchorID: anchor.ID,
			Relation: relation,
			Seed:     concepts.Seed{Name: args[0], Source: concepts.SourceUser},
		})
		if err != nil {
			return err
		}

		verb := "Added"
		if res.Reused {
			verb = "Linked existing"
		}
		fmt.Printf("%s concept %q as %s of %q.\n", verb, res.Concept.Name, relation, anchor.Name)
		for _, e := range res.RemovedEdges {
			fmt.Printf("Removed an edge to keep the graph acyclic (%s -> %s).\n", e.From, e.To)
		}
		return nil
	},
}

var graphShowCmd = &cobra.Command{
	Use:   "show <graph-name>",
	Short: "Show a graph's concepts by tier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx := cmd.Context()

		g, err := findGraphByName(ctx, a, userID(cmd), args[0])
		if err != nil {
			return err
		}
		members, err := a.Repos.Graphs.ListMemberships(ctx, g.ID)
		if err != nil {
			return err
		}
		if len(members) == 0 {
			fmt.Println("Graph is empty.")
			return nil
		}

		byTier := make(map[int][]string)
		for _, m := range members {
			c, err := a.Repos.Concepts.Get(ctx, m.ConceptID)
			if err != nil {
				return err
			}
			byTier[m.DepthTier] = append(byTier[m.DepthTier], c.Name)
		}
		tiers := make([]int, 0, len(byTier))
		for t := range byTier {
			tiers = append(tiers, t)
		}
		sort.Ints(tiers)
		for _, t := range tiers {
			sort.Strings(byTier[t])
			fmt.Printf("Tier %d: %s\n", t, strings.Join(byTier[t], ", "))
		}
		return nil
	},
}

var graphCheckCmd = &cobra.Command{
	Use:   "check <graph-name>",
	Short: "Validate that a graph is acyclic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repair, _ := cmd.Flags().GetBool("repair")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx := cmd.Context()

		g, err := findGraphByName(ctx, a, userID(cmd), args[0])
		if err != nil {
			return err
		}
		members, err := a.Repos.Graphs.ListMemberships(ctx, g.ID)
		if err != nil {
			return err
		}
		edges, err := a.Repos.Graphs.ListEdges(ctx, g.ID)
		if err != nil {
			return err
		}
		nodes := make([]uuid.UUID, len(members))
		for i, m := range members {
			nodes[i] = m.ConceptID
		}

		res := graph.ValidateDAG(nodes, edges)
		if res.IsDAG {
			fmt.Printf("Graph %q is acyclic (%d concepts, %d edges).\n", g.Name, len(nodes), len(edges))
			return nil
		}
		fmt.Printf("Graph %q has cycles involving %d concepts.\n", g.Name, len(res.Cyclic))
		if !repair {
			fmt.Println("Run again with --repair to break the cycles.")
			return nil
		}
		removed, err := a.Inserter.Relayout(ctx, g.ID)
		if err != nil {
			return err
		}
		for _, e := range removed {
			fmt.Printf("Removed edge %s -> %s.\n", e.From, e.To)
		}
		fmt.Println("Graph repaired and relaid out.")
		return nil
	},
}

var graphLayoutCmd = &cobra.Command{
	Use:   "layout <graph-name>",
	Short: "Recompute positions for every concept in a graph",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx := cmd.Context()

		g, err := findGraphByName(ctx, a, userID(cmd), args[0])
		if err != nil {
			return err
		}
		removed, err := a.Inserter.Relayout(ctx, g.ID)
		if err != nil {
			return err
		}
		for _, e := range removed {
			fmt.Printf("Removed edge %s -> %s to keep the graph acyclic.\n", e.From, e.To)
		}
		fmt.Printf("Recomputed layout for %q.\n", g.Name)
		return nil
	},
}

var graphSuggestCmd = &cobra.Command{
	Use:   "suggest <concept-name>",
	Short: "Ask for a prerequisite or follow-on concept suggestion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asExtension, _ := cmd.Flags().GetBool("extension")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		if a.Suggester == nil {
			return fmt.Errorf("no LLM provider configured; suggestions unavailable")
		}

		ctx := cmd.Context()
		user := userID(cmd)
		c, err := a.Repos.Concepts.FindByNormalizedName(ctx, user, concepts.NormalizeName(args[0]))
		if err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("no concept named %q", args[0])
		}

		all, err := a.Repos.Concepts.ListByUser(ctx, user)
		if err != nil {
			return err
		}
		names := make([]string, 0, len(all))
		for i := range all {
			if !all[i].Deprecated {
				names = append(names, all[i].Name)
			}
		}

		kind := tutor.SuggestPrerequisite
		if asExtension {
			kind = tutor.SuggestExtension
		}
		s, err := a.Suggester.Suggest(ctx, c, names, kind)
		if err != nil {
			return fmt.Errorf("suggest %s for %q: %w", kind, c.Name, err)
		}

		fmt.Printf("Suggested %s: %s\n", kind, s.Name)
		if s.Description != "" {
			fmt.Println(s.Description)
		}
		if s.Rationale != "" {
			fmt.Printf("Why: %s\n", s.Rationale)
		}
		fmt.Printf("\nAdd it with: praxis graph insert %q --graph <graph> --anchor %q", s.Name, c.Name)
		if kind == tutor.SuggestPrerequisite {
			fmt.Print(" --prerequisite")
		}
		fmt.Println()
		return nil
	},
}

// findGraphByName resolves a graph by case-insensitive name for the user.
func findGraphByName(ctx context.Context, a *app.App, user, name string) (*concepts.UnitGraph, error) {
	list, err := a.Repos.Graphs.ListGraphs(ctx, user)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if strings.EqualFold(list[i].Name, name) {
			return &list[i], nil
		}
	}
	return nil, fmt.Errorf("no graph named %q", name)
}

func init() {
	graphInsertCmd.Flags().String("graph", "", "Graph to insert into")
	graphInsertCmd.Flags().String("anchor", "", "Existing concept to attach to")
	graphInsertCmd.Flags().Bool("prerequisite", false, "Insert as a prerequisite of the anchor (default: extension)")
	graphInsertCmd.MarkFlagRequired("graph")
	graphInsertCmd.MarkFlagRequired("anchor")

	graphCheckCmd.Flags().Bool("repair", false, "Break cycles and recompute the layout")
	graphSuggestCmd.Flags().Bool("extension", false, "Suggest a follow-on instead of a prerequisite")

	graphCmd.AddCommand(graphCreateCmd)
	graphCmd.AddCommand(graphInsertCmd)
	graphCmd.AddCommand(graphShowCmd)
	graphCmd.AddCommand(graphCheckCmd)
	graphCmd.AddCommand(graphLayoutCmd)
	graphCmd.AddCommand(graphSuggestCmd)
}
