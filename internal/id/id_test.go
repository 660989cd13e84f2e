package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscription(t *testing.T) {
	assert.Equal(t, "sub_netflix", Subscription("Netflix"))
	assert.Equal(t, "sub_disney", Subscription("Disney+"))
	assert.Equal(t, "sub_the_new_york_times", Subscription("The New York Times"))
	assert.Equal(t, "sub_monday_com", Subscription("Monday.com"))
	assert.Equal(t, "sub_unknown", Subscription(""))
}

func TestSubscription_Deterministic(t *testing.T) {
	assert.Equal(t, Subscription("Hydro One"), Subscription("Hydro One"))
}
