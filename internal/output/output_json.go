package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/tkjaer/netprobe/internal/shared"
)

// maxShownSamples caps the RTT_samples list in the rendered report. The
// statistics fields are still computed over the full sample set.
const maxShownSamples = 4

// JSONOutput writes the session report to a file or stdout when the run
// completes.
type JSONOutput struct {
	file     *os.File
	toStdout bool
}

func NewJSONOutput(filename string) (*JSONOutput, error) {
	if filename == "" {
		// Output to stdout
		return &JSONOutput{
			file:     os.Stdout,
			toStdout: true,
		}, nil
	}
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	return &JSONOutput{
		file:     f,
		toStdout: false,
	}, nil
}

func (j *JSONOutput) WriteReport(report *shared.SessionReport) error {
	doc, err := Render(report)
	if err != nil {
		return err
	}
	doc = append(doc, '\n')
	_, err = j.file.Write(doc)
	return err
}

func (j *JSONOutput) Close() error {
	if j.toStdout {
		return nil
	}
	return j.file.Close()
}

type targetDocument struct {
	RTTSamples []int  `json:"RTT_samples"`
	RTTAvg     string `json:"RTT_avg"`
	RTTMax     string `json:"RTT_max"`
	PacketLoss string `json:"packet_loss"`
}

type reportDocument struct {
	StartTime string         `json:"start_time"`
	EndTime   string         `json:"end_time"`
	Rate      string         `json:"rate"`
	Results   orderedResults `json:"results"`
}

// orderedResults marshals target entries in the original input order, which
// encoding/json cannot guarantee for plain maps.
type orderedResults struct {
	order   []string
	entries map[string]targetDocument
}

func (r orderedResults) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, target := range r.order {
		doc, ok := r.entries[target]
		if !ok {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false

		key, err := json.Marshal(target)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(doc)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Render produces the final report document: pretty-printed JSON with the
// RTT sample arrays rendered as compact inline lists.
func Render(report *shared.SessionReport) ([]byte, error) {
	doc := reportDocument{
		StartTime: report.StartTime.Format(shared.TimeFormat),
		EndTime:   report.EndTime.Format(shared.TimeFormat),
		Rate:      fmt.Sprintf("%d packets/sec", report.Rate),
		Results: orderedResults{
			order:   report.Targets,
			entries: make(map[string]targetDocument, len(report.Results)),
		},
	}

	for target, stats := range report.Results {
		doc.Results.entries[target] = targetDocument{
			RTTSamples: truncateSamples(stats.Samples),
			RTTAvg:     fmt.Sprintf("%dms", stats.AvgMs),
			RTTMax:     fmt.Sprintf("%dms", stats.MaxMs),
			PacketLoss: fmt.Sprintf("%d%%", stats.LossPct),
		}
	}

	out, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, err
	}
	return compactSampleArrays(out), nil
}

// truncateSamples keeps only the first samples for display.
func truncateSamples(samples []int) []int {
	if samples == nil {
		return []int{}
	}
	if len(samples) > maxShownSamples {
		return samples[:maxShownSamples]
	}
	return samples
}

// sampleArrayPattern matches pretty-printed RTT_samples arrays, including
// the line breaks MarshalIndent puts between elements.
var sampleArrayPattern = regexp.MustCompile(`(?s)"RTT_samples": \[(.*?)\]`)

// compactSampleArrays rewrites each RTT_samples array onto a single line.
func compactSampleArrays(doc []byte) []byte {
	return sampleArrayPattern.ReplaceAllFunc(doc, func(m []byte) []byte {
		inner := sampleArrayPattern.FindSubmatch(m)[1]
		fields := strings.FieldsFunc(string(inner), func(r rune) bool {
			return r == ',' || r == ' ' || r == '\n' || r == '\t' || r == '\r'
		})
		return []byte(`"RTT_samples": [` + strings.Join(fields, ", ") + `]`)
	})
}
