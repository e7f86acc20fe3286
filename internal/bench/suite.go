// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"os"

	"github.com/eapache/queue"
	"gopkg.in/yaml.v3"
)

// suiteFile is the YAML shape of a suite. CPU fields are pointers so
// an omitted field means "unpinned" rather than core 0.
type suiteFile struct {
	Cases []struct {
		Name        string `yaml:"name"`
		Capacity    int    `yaml:"capacity"`
		Iterations  int64  `yaml:"iterations"`
		ProducerCPU *int   `yaml:"producer_cpu"`
		ConsumerCPU *int   `yaml:"consumer_cpu"`
	} `yaml:"cases"`
}

// LoadSuite reads a YAML suite definition.
//
// Example:
//
//	cases:
//	  - name: small-ring
//	    capacity: 16
//	    iterations: 1000000
//	  - name: pinned
//	    capacity: 100000
//	    iterations: 10000000
//	    producer_cpu: 1
//	    consumer_cpu: 0
func LoadSuite(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bench: reading suite: %w", err)
	}

	var f suiteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("bench: parsing suite %s: %w", path, err)
	}
	if len(f.Cases) == 0 {
		return nil, fmt.Errorf("bench: suite %s defines no cases", path)
	}

	cases := make([]Case, 0, len(f.Cases))
	for i, fc := range f.Cases {
		c := Case{
			Name:        fc.Name,
			Capacity:    fc.Capacity,
			Iterations:  fc.Iterations,
			ProducerCPU: -1,
			ConsumerCPU: -1,
		}
		if c.Name == "" {
			c.Name = fmt.Sprintf("case-%d", i)
		}
		if fc.ProducerCPU != nil {
			c.ProducerCPU = *fc.ProducerCPU
		}
		if fc.ConsumerCPU != nil {
			c.ConsumerCPU = *fc.ConsumerCPU
		}
		cases = append(cases, c)
	}
	return cases, nil
}

// RunAll executes cases sequentially in definition order and stops at
// the first failure, returning the results completed so far.
func RunAll(cases []Case) ([]Result, error) {
	pending := queue.New()
	for i := range cases {
		pending.Add(cases[i])
	}

	results := make([]Result, 0, len(cases))
	for pending.Length() > 0 {
		c := pending.Remove().(Case)
		res, err := Run(c)
		if err != nil {
			return results, fmt.Errorf("bench: case %q: %w", c.Name, err)
		}
		results = append(results, res)
	}
	return results, nil
}
