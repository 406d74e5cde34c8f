// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2026 Corvess
//
// SPDX-License-Identifier: GPL-2.0-only

// Package fixtures reads datasets from the declarative YAML description used
// by the test suite and the nddiff tool:
//
//	attrs:
//	  title: sea surface temperature
//	variables:
//	  x:
//	    dims: [x]
//	    dtype: int
//	    data: [0, 1, 2]
//	  sst:
//	    dims: [x]
//	    data: [11.2, 11.9, .nan]
//	    attrs: {units: degC}
//
// dtype is one of float (the default), int, string, bytes, time, duration.
// shape is optional and defaults to 1-d over the data list.
package fixtures

import (
	"io"
	"os"
	"time"

	"github.com/corvess/ndlab/labeled"
	"github.com/corvess/ndlab/ndarray"
	"github.com/corvess/ndlab/utils/errors"
	"gopkg.in/yaml.v3"
)

type datasetFile struct {
	Attrs     map[string]any          `yaml:"attrs"`
	Variables map[string]variableFile `yaml:"variables"`
}

type variableFile struct {
	Dims  []string       `yaml:"dims"`
	DType string         `yaml:"dtype"`
	Shape []int          `yaml:"shape"`
	Data  []any          `yaml:"data"`
	Attrs map[string]any `yaml:"attrs"`
}

// Load reads a YAML dataset fixture from disk.
func Load(path string) (*labeled.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := ReadDataset(f)
	return d, errors.Wrapf(err, "reading fixture %q", path)
}

// ReadDataset decodes a YAML dataset description from r.
func ReadDataset(r io.Reader) (*labeled.Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var df datasetFile
	if err := dec.Decode(&df); err != nil {
		return nil, errors.Wrap(err, "decoding dataset yaml")
	}
	vars := map[string]*labeled.Variable{}
	for name, vf := range df.Variables {
		v, err := vf.build()
		if err != nil {
			return nil, errors.Wrapf(err, "variable %q", name)
		}
		vars[name] = v
	}
	return labeled.NewDataset(vars, df.Attrs)
}

func (vf variableFile) build() (*labeled.Variable, error) {
	shape := vf.Shape
	if shape == nil {
		shape = []int{len(vf.Data)}
	}
	arr, err := buildArray(vf.DType, shape, vf.Data)
	if err != nil {
		return nil, err
	}
	return labeled.NewVariable(vf.Dims, arr, vf.Attrs)
}

func buildArray(dtype string, shape []int, data []any) (*ndarray.Array, error) {
	switch dtype {
	case "", "float":
		values, err := convert(data, asFloat)
		if err != nil {
			return nil, err
		}
		return ndarray.NewFloats(shape, values)
	case "int":
		values, err := convert(data, asInt)
		if err != nil {
			return nil, err
		}
		return ndarray.NewInts(shape, values)
	case "string":
		values, err := convert(data, asString)
		if err != nil {
			return nil, err
		}
		return ndarray.NewStrings(shape, values)
	case "bytes":
		values, err := convert(data, asBytes)
		if err != nil {
			return nil, err
		}
		return ndarray.NewBytes(shape, values)
	case "time":
		values, err := convert(data, asTime)
		if err != nil {
			return nil, err
		}
		return ndarray.NewTimes(shape, values)
	case "duration":
		values, err := convert(data, asDuration)
		if err != nil {
			return nil, err
		}
		return ndarray.NewDurations(shape, values)
	default:
		return nil, errors.Errorf("unknown dtype %q", dtype)
	}
}

func convert[T any](data []any, f func(any) (T, error)) ([]T, error) {
	out := make([]T, len(data))
	for i, raw := range data {
		v, err := f(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		out[i] = v
	}
	return out, nil
}

func asFloat(raw any) (float64, error) {
	switch x := raw.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	default:
		return 0, errors.Errorf("%v (%T) is not a float", raw, raw)
	}
}

func asInt(raw any) (int64, error) {
	switch x := raw.(type) {
	case int:
		return int64(x), nil
	case int64:
		return x, nil
	default:
		return 0, errors.Errorf("%v (%T) is not an int", raw, raw)
	}
}

func asString(raw any) (string, error) {
	if s, ok := raw.(string); ok {
		return s, nil
	}
	return "", errors.Errorf("%v (%T) is not a string", raw, raw)
}

func asBytes(raw any) ([]byte, error) {
	s, err := asString(raw)
	return []byte(s), err
}

func asTime(raw any) (time.Time, error) {
	switch x := raw.(type) {
	case time.Time:
		// yaml decodes canonical timestamps itself
		return x, nil
	case string:
		ts, err := time.Parse(time.RFC3339, x)
		return ts, errors.Wrapf(err, "parsing %q", x)
	default:
		return time.Time{}, errors.Errorf("%v (%T) is not a timestamp", raw, raw)
	}
}

func asDuration(raw any) (time.Duration, error) {
	s, err := asString(raw)
	if err != nil {
		return 0, err
	}
	d, err := time.ParseDuration(s)
	return d, errors.Wrapf(err, "parsing %q", s)
}
