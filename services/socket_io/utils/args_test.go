package socketio_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayloadOf(t *testing.T) {
	payload := PayloadOf([]interface{}{map[string]interface{}{"code": "ABC123"}})
	assert.Equal(t, "ABC123", payload["code"])

	assert.Nil(t, PayloadOf(nil))
	assert.Nil(t, PayloadOf([]interface{}{}))
	assert.Nil(t, PayloadOf([]interface{}{"not an object"}))
}

func TestStringField(t *testing.T) {
	payload := map[string]interface{}{"name": "alice", "count": 3.0}

	assert.Equal(t, "alice", StringField(payload, "name"))
	assert.Equal(t, "", StringField(payload, "missing"))
	assert.Equal(t, "", StringField(payload, "count"))
	assert.Equal(t, "", StringField(nil, "name"))
}

func TestStringSliceField(t *testing.T) {
	payload := map[string]interface{}{
		"luggageIds": []interface{}{"suitcase_1", "suitcase_2"},
		"mixed":      []interface{}{"suitcase_1", 2.0},
		"scalar":     "suitcase_1",
	}

	assert.Equal(t, []string{"suitcase_1", "suitcase_2"}, StringSliceField(payload, "luggageIds"))
	assert.Nil(t, StringSliceField(payload, "mixed"))
	assert.Nil(t, StringSliceField(payload, "scalar"))
	assert.Nil(t, StringSliceField(payload, "missing"))
	assert.Nil(t, StringSliceField(nil, "luggageIds"))
}

func TestIntField(t *testing.T) {
	payload := map[string]interface{}{
		"tokenIndex": 2.0, // JSON numbers decode as float64
		"direct":     5,
		"text":       "7",
	}

	value, ok := IntField(payload, "tokenIndex")
	assert.True(t, ok)
	assert.Equal(t, 2, value)

	value, ok = IntField(payload, "direct")
	assert.True(t, ok)
	assert.Equal(t, 5, value)

	_, ok = IntField(payload, "text")
	assert.False(t, ok)
	_, ok = IntField(payload, "missing")
	assert.False(t, ok)
	_, ok = IntField(nil, "tokenIndex")
	assert.False(t, ok)
}
