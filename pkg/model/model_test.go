package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/matt-steen/ball-in-court/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	d, ok := model.ParseDate("2026-03-10")
	assert.True(ok)
	assert.Equal("2026-03-10", d.String())

	d, ok = model.ParseDate("2026-03-10T22:15:00Z")
	assert.True(ok)
	assert.Equal(model.DateOf(time.Date(2026, 3, 10, 22, 15, 0, 0, time.UTC)), d)

	for _, bad := range []string{"", "  ", "soon", "2026-13-40", "10/03/2026"} {
		d, ok = model.ParseDate(bad)
		assert.False(ok, bad)
		assert.False(d.IsSet(), bad)
	}
}

func TestDateArithmetic(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	today := model.NewDate(2026, 3, 10)

	assert.Equal(7, today.DaysSince(model.NewDate(2026, 3, 3)))
	assert.Equal(-2, today.DaysSince(today.AddDays(2)))
	assert.Equal(0, today.DaysSince(model.DateOf(time.Date(2026, 3, 10, 23, 59, 0, 0, time.Local))))
	assert.Equal("2026-04-01", model.NewDate(2026, 3, 31).AddDays(1).String())
	assert.True(today.Before(today.AddDays(1)))
	assert.False(today.Before(today))
	assert.True(today.Equal(model.NewDate(2026, 3, 10)))
	assert.False(today.Equal(model.Date{}))

	// a month containing a DST change in most zones still counts whole days
	assert.Equal(31, model.NewDate(2026, 4, 1).DaysSince(model.NewDate(2026, 3, 1)))
}

func TestDateJSON(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	data, err := json.Marshal(model.NewDate(2026, 3, 10))
	assert.Nil(err)
	assert.Equal(`"2026-03-10"`, string(data))

	data, err = json.Marshal(model.Date{})
	assert.Nil(err)
	assert.Equal(`""`, string(data))

	var d model.Date
	assert.Nil(json.Unmarshal([]byte(`"not a date"`), &d))
	assert.False(d.IsSet())

	assert.Nil(json.Unmarshal([]byte(`42`), &d))
	assert.False(d.IsSet())
}

func TestUrgency(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	assert.Equal(3, model.UrgencyHigh.Weight())
	assert.Equal(2, model.UrgencyMedium.Weight())
	assert.Equal(1, model.UrgencyLow.Weight())
	assert.Equal(0, model.Urgency("urgent").Weight())
	assert.Equal("High", model.UrgencyHigh.Title())
	assert.Equal("", model.Urgency("").Title())

	u, ok := model.ParseUrgency(" HIGH ")
	assert.True(ok)
	assert.Equal(model.UrgencyHigh, u)

	_, ok = model.ParseUrgency("whenever")
	assert.False(ok)
}

func TestDecodeTasksDegradesFields(t *testing.T) {
	t.Parallel()

	require := require.New(t)
	assert := assert.New(t)

	data := []byte(`[
		{"id": 1700000000000, "title": "Draft contract", "dueDate": "", "urgency": "high",
		 "owner": "Me", "createdAt": "2026-03-01T10:00:00.000Z", "status": "active"},
		{"id": "b", "title": "Review", "dueDate": "garbage", "urgency": 7, "owner": "Alex",
		 "ownerEmail": "a@x.com", "followUpDate": "2026-03-05", "status": "handed-off",
		 "handoffDate": "yesterday"},
		"not a record",
		{"id": "c", "title": "Odd", "status": "archived", "completedDate": "2026-03-02T08:00:00Z"}
	]`)

	tasks, err := model.DecodeTasks(data)
	require.Nil(err)
	require.Len(tasks, 3)

	assert.Equal("1700000000000", tasks[0].ID)
	assert.False(tasks[0].DueDate.IsSet())
	assert.Equal(model.UrgencyHigh, tasks[0].Urgency)
	assert.Equal(model.StatusActive, tasks[0].Status)
	require.NotNil(tasks[0].CreatedAt)
	assert.Equal(2026, tasks[0].CreatedAt.Year())

	assert.False(tasks[1].DueDate.IsSet())
	assert.Equal(model.Urgency(""), tasks[1].Urgency)
	assert.Equal("2026-03-05", tasks[1].FollowUpDate.String())
	assert.Nil(tasks[1].HandoffDate)
	assert.Equal("a@x.com", tasks[1].OwnerEmail)

	assert.Equal(model.Status(""), tasks[2].Status)
	assert.NotNil(tasks[2].CompletedDate)
}

func TestDecodeTasksRejectsNonArray(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	_, err := model.DecodeTasks([]byte(`{"tasks": []}`))
	assert.NotNil(err)

	_, err = model.DecodeContacts([]byte(`nope`))
	assert.NotNil(err)
}

func TestDecodeContacts(t *testing.T) {
	t.Parallel()

	assert := assert.New(t)

	contacts, err := model.DecodeContacts([]byte(`[{"id": 12, "name": "Alex", "email": "a@x.com"}, {"name": "Sam"}]`))
	assert.Nil(err)
	assert.Equal([]model.Contact{
		{ID: "12", Name: "Alex", Email: "a@x.com"},
		{ID: "", Name: "Sam", Email: ""},
	}, contacts)
}
