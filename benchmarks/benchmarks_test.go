package benchmarks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"

	"github.com/buger/jsonparser"
)

// BenchmarkParsers compares JSON handling across libraries on the
// same inputs.  What each contender actually does differs and is the
// point of the comparison:
//   - peglex: the combinator-built recognizer, no tree
//   - encoding_json_valid: stdlib validation, no tree
//   - encoding_json: stdlib Unmarshal into any, full tree
//   - buger_jsonparser: streaming iteration, no tree
func BenchmarkParsers(b *testing.B) {
	inputs := []struct {
		name string
		data []byte
	}{
		{"30kb", generateInput(30 * 1024)},
		{"500kb", generateInput(500 * 1024)},
		{"2000kb", generateInput(2000 * 1024)},
	}

	parsers := []struct {
		name string
		fn   func(*testing.B, []byte)
	}{
		{"peglex", benchmarkPeglex},
		{"encoding_json_valid", benchmarkEncodingJSONValid},
		{"encoding_json", benchmarkEncodingJSON},
		{"buger_jsonparser", benchmarkBugerJSONParser},
	}

	for _, input := range inputs {
		for _, parser := range parsers {
			name := fmt.Sprintf("input=%s/parser=%s", input.name, parser.name)
			data, fn := input.data, parser.fn
			b.Run(name, func(b *testing.B) {
				b.SetBytes(int64(len(data)))
				fn(b, data)
			})
		}
	}
}

func benchmarkPeglex(b *testing.B, data []byte) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !validJSON(data) {
			b.Fatal("recognizer rejected the input")
		}
	}
}

func benchmarkEncodingJSONValid(b *testing.B, data []byte) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !json.Valid(data) {
			b.Fatal("json.Valid rejected the input")
		}
	}
}

func benchmarkEncodingJSON(b *testing.B, data []byte) {
	var v any
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := json.Unmarshal(data, &v); err != nil {
			b.Fatalf("error in encoding/json: %v", err)
		}
	}
}

func benchmarkBugerJSONParser(b *testing.B, data []byte) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
			jsonparser.ObjectEach(value, func(key []byte, value []byte, dataType jsonparser.ValueType, offset int) error {
				return nil
			})
		})
		if err != nil {
			b.Fatalf("error in buger/jsonparser: %v", err)
		}
	}
}

// generateInput produces a deterministic JSON array of objects at
// least size bytes long.
func generateInput(size int) []byte {
	rng := rand.New(rand.NewSource(42))
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i := 0; buf.Len() < size; i++ {
		if i > 0 {
			buf.WriteString(",\n")
		}
		fmt.Fprintf(&buf,
			`{"id":%d,"name":"item-%04d","price":%.2f,"active":%t,"tags":["alpha","beta\n\t"],"meta":{"depth":%d,"ratio":%g,"note":null}}`,
			i, rng.Intn(10000), rng.Float64()*1000, i%2 == 0, rng.Intn(5), rng.Float64())
	}
	buf.WriteByte(']')
	return buf.Bytes()
}
