package acl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckResult(t *testing.T) {
	scenarios := map[string]struct {
		code    int
		which   int
		message string
	}{
		"test group error": {
			code:    1,
			which:   3,
			message: "invalid ACL entry: 3; multiple group entries",
		},
		"test user error": {
			code:    2,
			which:   1,
			message: "invalid ACL entry: 1; multiple user entries",
		},
		"test other error": {
			code:    3,
			which:   5,
			message: "invalid ACL entry: 5; multiple other entries",
		},
		"test class error": {
			code:    4,
			which:   2,
			message: "invalid ACL entry: 2; multiple mask entries",
		},
		"test duplicate error": {
			code:    5,
			which:   4,
			message: "invalid ACL entry: 4; multiple user or group entries",
		},
		"test missing error": {
			code:    6,
			which:   -1,
			message: "missing ACL entries",
		},
		"test memory error": {
			code:    7,
			message: "out of memory",
		},
		"test entry error": {
			code:    8,
			which:   0,
			message: "invalid ACL entry: 0; invalid entry type",
		},
		"test unknown error": {
			code:    42,
			message: "unknown error",
		},
	}

	for scenario, data := range scenarios {
		t.Run(scenario, func(t *testing.T) {
			err := checkResult(data.code, data.which)

			assert.ErrorIs(t, err, ErrInvalidACL)
			assert.EqualError(t, err, data.message)
		})
	}
}

func TestCheckResultValid(t *testing.T) {
	assert.NoError(t, checkResult(0, 7))
}

func TestCheck(t *testing.T) {
	withFake(t, &fakeSyscalls{})

	assert.NoError(t, Check(trivialEntries))
	assert.ErrorIs(t, Check(trivialEntries[:2]), ErrInvalidACL)
}
