// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateQuestion(t *testing.T) {
	assert.NoError(t, ValidateQuestion("What is probation?"))
	assert.ErrorIs(t, ValidateQuestion(""), ErrEmptyQuestion)
	assert.ErrorIs(t, ValidateQuestion("   \t\n"), ErrEmptyQuestion)
}

func TestValidateQueryBounds(t *testing.T) {
	tests := []struct {
		name          string
		maxIterations int
		topK          int
		wantErr       error
	}{
		{"minimum bounds", 1, 1, nil},
		{"maximum bounds", 10, 20, nil},
		{"typical", 3, 5, nil},
		{"iterations too low", 0, 5, ErrInvalidMaxIterations},
		{"iterations too high", 11, 5, ErrInvalidMaxIterations},
		{"top k too low", 3, 0, ErrInvalidTopK},
		{"top k too high", 3, 21, ErrInvalidTopK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQueryBounds(tt.maxIterations, tt.topK)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateWebResult(t *testing.T) {
	valid := &WebResult{Kind: WebResultArticle, Content: "body"}
	assert.NoError(t, ValidateWebResult(valid))

	assert.ErrorIs(t, ValidateWebResult(&WebResult{Kind: WebResultArticle}), ErrEmptyContent)
	assert.ErrorIs(t, ValidateWebResult(&WebResult{Content: "body"}), ErrInvalidWebResultKind)
}

func TestIDFromContent(t *testing.T) {
	a := IDFromContent("same content")
	b := IDFromContent("same content")
	c := IDFromContent("different content")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotZero(t, a)
}
