package sheets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "botsweep/pkg/errors"
	"botsweep/pkg/logger"
)

// fakeAPI records calls and lets tests script append failures per sheet
type fakeAPI struct {
	existing map[string]bool
	created  []string
	cleared  []string
	updates  map[string][][]interface{}
	appends  map[string][][]interface{}

	// appendErrs maps an append range to the error returned on the next
	// append to it. The error is consumed once.
	appendErrs map[string]error
}

func newFakeAPI(existing ...string) *fakeAPI {
	f := &fakeAPI{
		existing:   make(map[string]bool),
		updates:    make(map[string][][]interface{}),
		appends:    make(map[string][][]interface{}),
		appendErrs: make(map[string]error),
	}
	for _, name := range existing {
		f.existing[name] = true
	}
	return f
}

func (f *fakeAPI) SheetExists(ctx context.Context, name string) (bool, error) {
	return f.existing[name], nil
}

func (f *fakeAPI) CreateSheet(ctx context.Context, name string) error {
	f.existing[name] = true
	f.created = append(f.created, name)
	return nil
}

func (f *fakeAPI) ClearSheet(ctx context.Context, name string) error {
	f.cleared = append(f.cleared, name)
	return nil
}

func (f *fakeAPI) UpdateRange(ctx context.Context, rangeA1 string, values [][]interface{}) error {
	f.updates[rangeA1] = append(f.updates[rangeA1], values...)
	return nil
}

func (f *fakeAPI) AppendRows(ctx context.Context, rangeA1 string, rows [][]interface{}) error {
	if err, ok := f.appendErrs[rangeA1]; ok {
		delete(f.appendErrs, rangeA1)
		return err
	}
	f.appends[rangeA1] = append(f.appends[rangeA1], rows...)
	return nil
}

func capacityError() error {
	return &errs.Error{
		Type:    errs.ErrorTypeCapacity,
		Message: "grid limits exceeded",
		Code:    400,
	}
}

func TestInitializeCreatesMissingSheet(t *testing.T) {
	api := newFakeAPI()
	writer := NewWriter(api, "Bots", logger.NewNopLogger())

	require.NoError(t, writer.Initialize(context.Background()))

	assert.Equal(t, []string{"Bots"}, api.created)
	assert.Empty(t, api.cleared)
	assert.Equal(t, [][]interface{}{{"User ID", "Nickname"}}, api.updates[headerRange("Bots")])
	assert.Equal(t, "Bots", writer.ActiveSheet())
	assert.Equal(t, 0, writer.Written())
}

func TestInitializeClearsExistingSheet(t *testing.T) {
	api := newFakeAPI("Bots")
	writer := NewWriter(api, "Bots", logger.NewNopLogger())

	require.NoError(t, writer.Initialize(context.Background()))

	assert.Empty(t, api.created)
	assert.Equal(t, []string{"Bots"}, api.cleared)
	assert.Len(t, api.updates[headerRange("Bots")], 1)
}

func TestInitializeTwiceLeavesOneHeader(t *testing.T) {
	api := newFakeAPI()
	writer := NewWriter(api, "Bots", logger.NewNopLogger())

	require.NoError(t, writer.Initialize(context.Background()))
	require.NoError(t, writer.Initialize(context.Background()))

	// Second init clears and rewrites the header instead of stacking a
	// second header row under the first
	assert.Equal(t, []string{"Bots"}, api.created)
	assert.Equal(t, []string{"Bots"}, api.cleared)
	assert.Empty(t, api.appends)
}

func TestAppendWritesRows(t *testing.T) {
	api := newFakeAPI()
	writer := NewWriter(api, "Bots", logger.NewNopLogger())
	require.NoError(t, writer.Initialize(context.Background()))

	rows := []Row{
		{AccountID: "id-1", Nickname: "---TAKE_1"},
		{AccountID: "id-2", Nickname: "---TAKE_2"},
	}
	require.NoError(t, writer.Append(context.Background(), rows))

	assert.Equal(t, [][]interface{}{
		{"id-1", "---TAKE_1"},
		{"id-2", "---TAKE_2"},
	}, api.appends[appendRange("Bots")])
	assert.Equal(t, 2, writer.Written())
}

func TestAppendEmptyIsNoop(t *testing.T) {
	api := newFakeAPI()
	writer := NewWriter(api, "Bots", logger.NewNopLogger())
	require.NoError(t, writer.Initialize(context.Background()))

	require.NoError(t, writer.Append(context.Background(), nil))
	assert.Empty(t, api.appends)
	assert.Equal(t, 0, writer.Written())
}

func TestAppendRollsOverOnCapacity(t *testing.T) {
	api := newFakeAPI()
	writer := NewWriter(api, "Bots", logger.NewNopLogger())
	require.NoError(t, writer.Initialize(context.Background()))

	api.appendErrs[appendRange("Bots")] = capacityError()

	rows := []Row{{AccountID: "id-1", Nickname: "---TAKE_1"}}
	require.NoError(t, writer.Append(context.Background(), rows))

	// Overflow sheet is created with its own header and receives the rows
	// that failed on the full sheet
	assert.Equal(t, []string{"Bots", "Bots_2"}, api.created)
	assert.Len(t, api.updates[headerRange("Bots_2")], 1)
	assert.Equal(t, [][]interface{}{{"id-1", "---TAKE_1"}}, api.appends[appendRange("Bots_2")])
	assert.Equal(t, "Bots_2", writer.ActiveSheet())
	assert.Equal(t, 1, writer.Written())

	// Subsequent appends land on the overflow sheet
	require.NoError(t, writer.Append(context.Background(), []Row{{AccountID: "id-2", Nickname: "---TAKE_2"}}))
	assert.Len(t, api.appends[appendRange("Bots_2")], 2)
}

func TestAppendSecondRolloverIncrementsSuffix(t *testing.T) {
	api := newFakeAPI()
	writer := NewWriter(api, "Bots", logger.NewNopLogger())
	require.NoError(t, writer.Initialize(context.Background()))

	api.appendErrs[appendRange("Bots")] = capacityError()
	require.NoError(t, writer.Append(context.Background(), []Row{{AccountID: "id-1", Nickname: "---TAKE_1"}}))

	api.appendErrs[appendRange("Bots_2")] = capacityError()
	require.NoError(t, writer.Append(context.Background(), []Row{{AccountID: "id-2", Nickname: "---TAKE_2"}}))

	assert.Equal(t, []string{"Bots", "Bots_2", "Bots_3"}, api.created)
	assert.Equal(t, "Bots_3", writer.ActiveSheet())
}

func TestAppendNonCapacityErrorIsFatal(t *testing.T) {
	api := newFakeAPI()
	writer := NewWriter(api, "Bots", logger.NewNopLogger())
	require.NoError(t, writer.Initialize(context.Background()))

	api.appendErrs[appendRange("Bots")] = &errs.Error{Type: errs.ErrorTypeServerError, Code: 500}

	err := writer.Append(context.Background(), []Row{{AccountID: "id-1", Nickname: "---TAKE_1"}})
	require.Error(t, err)

	// No rollover attempted
	assert.Equal(t, []string{"Bots"}, api.created)
	assert.Equal(t, "Bots", writer.ActiveSheet())
	assert.Equal(t, 0, writer.Written())
}

func TestAppendFailureAfterRolloverIsFatal(t *testing.T) {
	api := newFakeAPI()
	writer := NewWriter(api, "Bots", logger.NewNopLogger())
	require.NoError(t, writer.Initialize(context.Background()))

	// The retry on the fresh sheet fails too; the writer gives up rather
	// than rolling over a second time for the same batch
	api.appendErrs[appendRange("Bots")] = capacityError()
	api.appendErrs[appendRange("Bots_2")] = capacityError()

	err := writer.Append(context.Background(), []Row{{AccountID: "id-1", Nickname: "---TAKE_1"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after rollover")
	assert.Equal(t, []string{"Bots", "Bots_2"}, api.created)
}
