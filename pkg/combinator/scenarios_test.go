package combinator

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"go-parsec/pkg/parser"
	"go-parsec/pkg/reply"
	"go-parsec/pkg/stream"
)

// scenarioExpectation is the golden-file shape for one named end-to-end
// grammar scenario, loaded from testdata/scenarios.yaml.
type scenarioExpectation struct {
	Name     string `yaml:"name"`
	Variant  string `yaml:"variant"`
	Value    string `yaml:"value"`
	Position int    `yaml:"position"`
	Message  string `yaml:"message"`
	Severity string `yaml:"severity"`
}

type scenarioFile struct {
	Scenarios []scenarioExpectation `yaml:"scenarios"`
}

func loadScenarios(t *testing.T) map[string]scenarioExpectation {
	t.Helper()
	raw, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)

	var f scenarioFile
	require.NoError(t, yaml.Unmarshal(raw, &f))

	byName := make(map[string]scenarioExpectation, len(f.Scenarios))
	for _, s := range f.Scenarios {
		byName[s.Name] = s
	}
	return byName
}

func assertMatchesGolden(t *testing.T, exp scenarioExpectation, variant reply.Variant, position int) {
	t.Helper()
	require.Equal(t, exp.Variant, variant.String())
	require.Equal(t, exp.Position, position)
}

func TestScenariosAgainstGoldenFile(t *testing.T) {
	golden := loadScenarios(t)

	t.Run(golden["S1"].Name, func(t *testing.T) {
		digit := parser.Satisfy(isDigit)
		number := ManyN(digit, 1)
		r := parser.Run(number, stream.NewRuneStream("42x"))

		exp := golden["S1"]
		assertMatchesGolden(t, exp, r.Variant(), r.Stream().Position().Offset)
		require.Equal(t, exp.Value, string(r.Value()))
	})

	t.Run(golden["S2"].Name, func(t *testing.T) {
		p := Choice2(parser.Token[rune]('a'), parser.Token[rune]('b'))
		r := parser.Run(p, stream.NewRuneStream("c"))

		exp := golden["S2"]
		assertMatchesGolden(t, exp, r.Variant(), r.Stream().Position().Offset)
		require.Empty(t, r.Messages())
	})

	t.Run(golden["S3"].Name, func(t *testing.T) {
		p := Between(parser.Token[rune]('x'), parser.Token[rune]('('), parser.Token[rune](')'))
		r := parser.Run(p, stream.NewRuneStream("(x)"))

		exp := golden["S3"]
		assertMatchesGolden(t, exp, r.Variant(), r.Stream().Position().Offset)
		require.Equal(t, exp.Value, string(r.Value()))
	})

	t.Run(golden["S4"].Name, func(t *testing.T) {
		digit := parser.Satisfy(isDigit)
		p := SepBy(digit, 1, parser.Token[rune](','))
		r := parser.Run(p, stream.NewRuneStream("1,2,3"))

		exp := golden["S4"]
		assertMatchesGolden(t, exp, r.Variant(), r.Stream().Position().Offset)
		require.Equal(t, exp.Value, string(r.Value()))
	})

	t.Run(golden["S5"].Name, func(t *testing.T) {
		digit := parser.Satisfy(isDigit)
		p := Right(parser.Token[rune]('['), ErrorWhenFailure(digit, "expected digit"))
		r := parser.Run(p, stream.NewRuneStream("[x"))

		exp := golden["S5"]
		assertMatchesGolden(t, exp, r.Variant(), r.Fatal().Span.Begin.Offset)
		require.Equal(t, exp.Message, r.Fatal().Text)
		require.Equal(t, exp.Severity, r.Fatal().Severity.String())
	})

	t.Run(golden["S6"].Name, func(t *testing.T) {
		ifThenSpace := Right(parser.Token[rune]('i'), Right(parser.Token[rune]('f'), parser.Token[rune](' ')))
		p := Choice2(ifThenSpace, parser.Token[rune]('i'))
		r := parser.Run(p, stream.NewRuneStream("in"))

		exp := golden["S6"]
		assertMatchesGolden(t, exp, r.Variant(), r.Stream().Position().Offset)
		require.Equal(t, exp.Value, string(r.Value()))
	})

	t.Run(golden["S7"].Name, func(t *testing.T) {
		digit := parser.Satisfy(isDigit)
		plus := Right(parser.Token[rune]('+'), parser.Succeed[rune, struct{}](struct{}{}))
		p := Chainl(digit, plus, "", func(acc string, d rune) string { return acc + string(d) })
		r := parser.Run(p, stream.NewRuneStream("1+2+3"))

		exp := golden["S7"]
		assertMatchesGolden(t, exp, r.Variant(), r.Stream().Position().Offset)
		require.Equal(t, exp.Value, r.Value())
	})
}
