package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndFormat_Basic(t *testing.T) {
	tmpl, err := Parse("{upper}")
	require.NoError(t, err)
	out, err := tmpl.Format("hello")
	require.NoError(t, err)
	assert.Equal(t, "HELLO", out)
}

func TestParseAndFormat_MixedLiteralAndPipeline(t *testing.T) {
	tmpl, err := Parse("Hello, {split: :0|upper}!")
	require.NoError(t, err)
	out, err := tmpl.Format("ada lovelace")
	require.NoError(t, err)
	assert.Equal(t, "Hello, ADA!", out)
}

func TestFormat_CompiledOnceAppliedManyTimes(t *testing.T) {
	tmpl, err := Parse("{trim|upper}")
	require.NoError(t, err)

	out1, err := tmpl.Format(" sam ")
	require.NoError(t, err)
	assert.Equal(t, "SAM", out1)

	out2, err := tmpl.Format(" max ")
	require.NoError(t, err)
	assert.Equal(t, "MAX", out2)
}

func TestFormatWithInputs(t *testing.T) {
	tmpl, err := Parse("{upper}")
	require.NoError(t, err)
	outs, err := tmpl.FormatWithInputs([]string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, outs)
}

func TestFormatWithInputs_StopsAtFirstError(t *testing.T) {
	// slice requires a list input; every call here gets a bare string.
	tmpl, err := Parse("{slice:0}")
	require.NoError(t, err)
	_, err = tmpl.FormatWithInputs([]string{"a,b", "c,d"})
	require.Error(t, err)
}

func TestParse_InvalidTemplateReturnsEvalError(t *testing.T) {
	_, err := Parse("{upper")
	require.Error(t, err)
	_, ok := err.(*EvalError)
	require.True(t, ok)
	assert.Equal(t, ErrorKind("ParseError"), err.(*EvalError).Kind)
}

func TestMustParse_PanicsOnInvalidTemplate(t *testing.T) {
	assert.Panics(t, func() {
		MustParse("{upper")
	})
}

func TestWithDebugSink_ReceivesEvents(t *testing.T) {
	var got []Event
	sink := recordingDebugSink(func(ev Event) { got = append(got, ev) })

	tmpl, err := Parse("{!upper}", WithDebugSink(sink))
	require.NoError(t, err)
	_, err = tmpl.Format("hi")
	require.NoError(t, err)

	require.NotEmpty(t, got)
	assert.Equal(t, EventPipelineStart, got[0].Kind)
	assert.Equal(t, EventPipelineEnd, got[len(got)-1].Kind)
}

func TestWithDebug_ForcesEmissionRegardlessOfBang(t *testing.T) {
	var got []Event
	sink := recordingDebugSink(func(ev Event) { got = append(got, ev) })

	tmpl, err := Parse("{upper}", WithDebugSink(sink), WithDebug(true))
	require.NoError(t, err)
	_, err = tmpl.Format("hi")
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestSetDebug_TogglesAtRuntime(t *testing.T) {
	var got []Event
	sink := recordingDebugSink(func(ev Event) { got = append(got, ev) })

	tmpl, err := Parse("{upper}", WithDebugSink(sink))
	require.NoError(t, err)

	_, err = tmpl.Format("hi")
	require.NoError(t, err)
	assert.Empty(t, got, "no debug bit and SetDebug not yet called")

	tmpl.SetDebug(true)
	assert.True(t, tmpl.Debug())
	_, err = tmpl.Format("hi")
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestLoadTemplateSet(t *testing.T) {
	yamlDoc := []byte(`
templates:
  greet: "Hello, {upper}!"
  shout: "{upper|append:!!!}"
`)
	set, err := LoadTemplateSet(yamlDoc)
	require.NoError(t, err)

	greet, ok := set.Get("greet")
	require.True(t, ok)
	out, err := greet.Format("sam")
	require.NoError(t, err)
	assert.Equal(t, "Hello, SAM!", out)

	shout, ok := set.Get("shout")
	require.True(t, ok)
	out, err = shout.Format("hi")
	require.NoError(t, err)
	assert.Equal(t, "HI!!!", out)

	_, ok = set.Get("missing")
	assert.False(t, ok)
}

func TestLoadTemplateSet_InvalidYAML(t *testing.T) {
	_, err := LoadTemplateSet([]byte("not: [valid"))
	assert.Error(t, err)
}

func TestLoadTemplateSet_BadTemplateNamesOffender(t *testing.T) {
	yamlDoc := []byte(`
templates:
  broken: "{upper"
`)
	_, err := LoadTemplateSet(yamlDoc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

type recordingDebugSink func(Event)

func (f recordingDebugSink) OnEvent(ev Event) { f(ev) }

// TestScenarios_EndToEnd exercises the concrete end-to-end scenarios named
// in spec.md §8 verbatim, one table case per numbered scenario.
func TestScenarios_EndToEnd(t *testing.T) {
	cases := []struct {
		name     string
		template string
		input    string
		want     string
	}{
		{
			name:     "scenario1_split_map_upper_join",
			template: "{split:,:..|map:{upper}|join:-}",
			input:    "hello,world,rust",
			want:     "HELLO-WORLD-RUST",
		},
		{
			name:     "scenario2_split_range",
			template: "{split:,:1..3}",
			input:    "a,b,c,d,e",
			want:     "b,c",
		},
		{
			name:     "scenario3_split_map_trim_upper_append",
			template: "{split:,:..|map:{trim|upper|append:!}}",
			input:    "  john  , jane , bob  ",
			want:     "JOHN!,JANE!,BOB!",
		},
		{
			name:     "scenario4_split_map_regexextract_pad",
			template: `{split:,:..|map:{regex_extract:\d+|pad:3:0:left}}`,
			input:    "item1,thing22,stuff333",
			want:     "001,022,333",
		},
		{
			name:     "scenario5_mixed_literal_and_template_sections",
			template: "Name: {split: :0} Age: {split: :1}",
			input:    "John 25",
			want:     "Name: John Age: 25",
		},
		{
			name:     "scenario7_map_inner_separator_inheritance",
			template: "{split:,:..|map:{split: :..|filter:o}}",
			input:    "hello world,foo bar,test orange",
			want:     "hello world,foo,orange",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tmpl, err := Parse(tc.template)
			require.NoError(t, err)
			out, err := tmpl.Format(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

// TestScenarios_Scenario6_WrongTypeError covers spec.md §8 scenario 6: upper
// applied directly to a list (no map) is a WrongType error.
func TestScenarios_Scenario6_WrongTypeError(t *testing.T) {
	tmpl, err := Parse("{split:,:..|upper}")
	require.NoError(t, err)

	_, err = tmpl.Format("a,b,c")
	require.Error(t, err)

	evalErr, ok := err.(*EvalError)
	require.True(t, ok)
	assert.Equal(t, KindWrongType, evalErr.Kind)
	assert.Equal(t, "upper", evalErr.Op)
	assert.Equal(t, "string", evalErr.Expected)
	assert.Equal(t, "list", evalErr.Got)
}
