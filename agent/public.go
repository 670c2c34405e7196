package agent

import (
	"context"
	"fmt"
	"os"

	"github.com/etnz/finplan"
	"github.com/etnz/finplan/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// SnapshotFile is the snapshot the experts work on. The assist command
// sets it before starting the session.
var SnapshotFile = "snapshot.json"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name: "Facilitator",
		// Used by facilitators to know what they can expect from the expert
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his personal finances, the value of his
			assets, the fees he is paying and the risks he is taking.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request.

			The user will assume that you know about his assets and platforms, check the
			snapshot first to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst returns an expert grounding answers with Google Search.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is an expert financial analyst,
		very well aware of financial products, platforms and fund providers,
		and of the latest news about companies and markets.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert financial analyst, you can search and find about anything related to
			financial institutions, companies, markets, funds etc. You leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewPlanner returns the expert in charge of the user's snapshot. It can
// run the engine reports and answer with their markdown output.
func NewPlanner() *Expert {

	lib := []Function{Valuation, Risks, Fees, Projection}

	return &Expert{
		Name: "Planner",
		Description: `This is the Planner. He is in charge of reading the user's financial snapshot.
		He can compute the portfolio valuation, concentration risks, the detailed fee report
		and long-term fee projections.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a financial planner in charge of the user's snapshot.
				You know how to use the Tools to extract relevant figures about the user's wealth.
				You are part of a team of experts, yours is everything about the user's own assets,
				platforms and fees. They might ask you questions about the user's portfolio,
				pardon their approximative language and figure out what they meant.

				Use the available tools to get information about the user's portfolio
				  - valuation, gains and taxes
				  - concentration risks
				  - fees and projections
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// report wraps a snapshot computation into a Func callback.
func report(name string, fn func(s *finplan.Snapshot, args map[string]any) (string, error)) func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		fresp := &genai.FunctionResponse{
			ID:       id,
			Name:     name,
			Response: map[string]any{},
		}
		s, err := loadSnapshot()
		if err != nil {
			fresp.Response["error"] = err.Error()
			return fresp
		}
		out, err := fn(s, args)
		if err != nil {
			fresp.Response["error"] = err.Error()
			return fresp
		}
		fresp.Response["output"] = out
		return fresp
	}
}

var Valuation = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Valuation",
		Description: `Valuation lists all the assets in the snapshot with their market value,
		cost basis, unrealized gain and the tax due on sale, all in the reporting currency.`,
		Parameters: &genai.Schema{Type: genai.TypeObject},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted valuation report.",
		},
	},
	Func: report("Valuation", func(s *finplan.Snapshot, args map[string]any) (string, error) {
		return renderer.ValuationMarkdown(s.NewValuationReport()), nil
	}),
}

var Risks = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Risks",
		Description: `Risks lists the concentration risks of the portfolio: groups of assets
		(by asset, class, currency, platform, sector, region or tier) whose share of the
		investible portfolio exceeds the user's thresholds.`,
		Parameters: &genai.Schema{Type: genai.TypeObject},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted concentration risk report.",
		},
	},
	Func: report("Risks", func(s *finplan.Snapshot, args map[string]any) (string, error) {
		return renderer.RisksMarkdown(s.NewConcentrationReport()), nil
	}),
}

var Fees = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Fees",
		Description: `Fees computes the annual fees of the portfolio: platform fees,
		advisor fees, fund expense drag, and the all-in fee rate.`,
		Parameters: &genai.Schema{Type: genai.TypeObject},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted fee report.",
		},
	},
	Func: report("Fees", func(s *finplan.Snapshot, args map[string]any) (string, error) {
		return renderer.FeesMarkdown(s.NewFeeReport()), nil
	}),
}

var Projection = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Projection",
		Description: `Projection grows the investible portfolio over a horizon with and
		without fees, and reports the lifetime cost of fees along with what-if scenarios
		for reduced fee rates.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"years": {
					Type:        genai.TypeInteger,
					Description: "The projection horizon in years. Defaults to 30.",
				},
				"growth": {
					Type:        genai.TypeNumber,
					Description: "The annual growth assumption in percent. Defaults to the portfolio's weighted expected return.",
				},
				"inflation": {
					Type:        genai.TypeNumber,
					Description: "The annual inflation assumption in percent. Defaults to 5.",
				},
			},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown-formatted fee projection report.",
		},
	},
	Func: report("Projection", func(s *finplan.Snapshot, args map[string]any) (string, error) {
		years := 30
		if y, ok := args["years"].(float64); ok && y > 0 {
			years = int(y)
		}
		growth := float64(s.WeightedReturn())
		if g, ok := args["growth"].(float64); ok {
			growth = g
		}
		inflation := 5.0
		if i, ok := args["inflation"].(float64); ok {
			inflation = i
		}
		return renderer.ProjectionMarkdown(s.NewProjection(years, growth, inflation)), nil
	}),
}

// loadSnapshot decodes the snapshot the session works on.
func loadSnapshot() (*finplan.Snapshot, error) {
	f, err := os.Open(SnapshotFile)
	if err != nil {
		return nil, fmt.Errorf("could not open snapshot file %q: %w", SnapshotFile, err)
	}
	defer f.Close()

	s, err := finplan.DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode snapshot file %q: %w", SnapshotFile, err)
	}
	return s, nil
}
