package flighttrack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubDialog records every interaction and answers from canned values.
type stubDialog struct {
	confirmAnswer bool
	saveName      string
	openName      string

	confirms []string
	warns    []string
	infos    []string
}

func (d *stubDialog) Confirm(title, message string) bool {
	d.confirms = append(d.confirms, message)
	return d.confirmAnswer
}
func (d *stubDialog) Warn(title, message string) { d.warns = append(d.warns, message) }
func (d *stubDialog) Info(title, message string) { d.infos = append(d.infos, message) }
func (d *stubDialog) AskSaveName(string) string  { return d.saveName }
func (d *stubDialog) AskOpenName(string) string  { return d.openName }

// recordingCodec captures save calls and serves canned loads.
type recordingCodec struct {
	loadName string
	loadWps  []Waypoint
	loadErr  error

	savedPaths []string
	saveErr    error
}

func (c *recordingCodec) codec() Codec {
	return Codec{
		Load: func(path string) (string, []Waypoint, error) {
			return c.loadName, c.loadWps, c.loadErr
		},
		Save: func(path, name string, wps []Waypoint) error {
			if c.saveErr != nil {
				return c.saveErr
			}
			c.savedPaths = append(c.savedPaths, path)
			return nil
		},
	}
}

func template() []Waypoint {
	return []Waypoint{
		{Location: "Nauru", FlightLevel: 350},
		{Location: "Kona", FlightLevel: 350},
	}
}

func TestNewAutoNamesWithCounter(t *testing.T) {
	t.Parallel()
	dlg := &stubDialog{}
	r := NewRegistry(dlg, (&recordingCodec{}).codec())

	first := r.New(template(), true)
	second := r.New(template(), false)
	require.Equal(t, "new flight track (1)", first.Name())
	require.Equal(t, "new flight track (2)", second.Name())
	require.Same(t, first, r.Active())
	require.Empty(t, dlg.warns)
}

func TestNewShortTemplateReportsButCreates(t *testing.T) {
	t.Parallel()
	dlg := &stubDialog{}
	r := NewRegistry(dlg, (&recordingCodec{}).codec())

	ft := r.New([]Waypoint{{Location: "Nauru"}}, true)
	require.NotNil(t, ft)
	require.Len(t, dlg.warns, 1)
	require.Equal(t, 1, r.Len())
}

func TestNewCopiesTemplate(t *testing.T) {
	t.Parallel()
	tmpl := template()
	r := NewRegistry(&stubDialog{}, (&recordingCodec{}).codec())

	ft := r.New(tmpl, true)
	ft.Waypoints()[0].Location = "Edited"
	require.Equal(t, "Nauru", tmpl[0].Location)

	other := r.New(tmpl, false)
	require.Equal(t, "Nauru", other.Waypoints()[0].Location)
}

func TestOpenRegistersParsedTrack(t *testing.T) {
	t.Parallel()
	codec := &recordingCodec{loadName: "Flight A", loadWps: template()}
	dlg := &stubDialog{}
	r := NewRegistry(dlg, codec.codec())
	r.New(template(), true)

	ft := r.Open("track.ftml")
	require.NotNil(t, ft)
	require.Equal(t, "Flight A", ft.Name())
	require.Equal(t, 2, r.Len())
	require.Same(t, ft, r.Active())
	require.Empty(t, dlg.warns)
}

func TestOpenRejectsUnknownExtension(t *testing.T) {
	t.Parallel()
	dlg := &stubDialog{}
	r := NewRegistry(dlg, (&recordingCodec{}).codec())
	r.New(template(), true)

	require.Nil(t, r.Open("track.bad"))
	require.Equal(t, 1, r.Len())
	require.Len(t, dlg.warns, 1)
}

func TestOpenReportsLoadFailure(t *testing.T) {
	t.Parallel()
	codec := &recordingCodec{loadErr: errors.New("boom")}
	dlg := &stubDialog{}
	r := NewRegistry(dlg, codec.codec())
	r.New(template(), true)

	require.Nil(t, r.Open("track.ftml"))
	require.Equal(t, 1, r.Len())
	require.Len(t, dlg.warns, 1)
}

func TestCloseRefusesLastTrack(t *testing.T) {
	t.Parallel()
	dlg := &stubDialog{confirmAnswer: true}
	r := NewRegistry(dlg, (&recordingCodec{}).codec())
	ft := r.New(template(), true)

	require.False(t, r.Close(ft))
	require.Equal(t, 1, r.Len())
	require.Len(t, dlg.infos, 1)
}

func TestCloseRefusesActiveTrack(t *testing.T) {
	t.Parallel()
	dlg := &stubDialog{confirmAnswer: true}
	r := NewRegistry(dlg, (&recordingCodec{}).codec())
	active := r.New(template(), true)
	r.New(template(), false)

	require.False(t, r.Close(active))
	require.Equal(t, 2, r.Len())
	require.Empty(t, dlg.confirms, "guard must refuse before any confirmation")
}

func TestCloseModifiedNeedsConfirmation(t *testing.T) {
	t.Parallel()
	dlg := &stubDialog{confirmAnswer: false}
	r := NewRegistry(dlg, (&recordingCodec{}).codec())
	r.New(template(), true)
	other := r.New(template(), false)
	other.MarkModified()

	require.False(t, r.Close(other))
	require.Equal(t, 2, r.Len())
	require.Len(t, dlg.confirms, 1)

	dlg.confirmAnswer = true
	require.True(t, r.Close(other))
	require.Equal(t, 1, r.Len())
}

func TestCloseNeverDropsBelowOne(t *testing.T) {
	t.Parallel()
	dlg := &stubDialog{confirmAnswer: true}
	r := NewRegistry(dlg, (&recordingCodec{}).codec())
	r.New(template(), true)
	r.New(template(), false)
	r.New(template(), false)

	for _, ft := range append([]*FlightTrack(nil), r.Tracks()...) {
		r.Close(ft)
		require.GreaterOrEqual(t, r.Len(), 1)
	}
}

func TestSaveAsThenSaveReusesPath(t *testing.T) {
	t.Parallel()
	codec := &recordingCodec{}
	dlg := &stubDialog{confirmAnswer: true}
	r := NewRegistry(dlg, codec.codec())
	ft := r.New(template(), true)

	require.True(t, r.SaveAs(ft, "x.ftml"))
	require.Equal(t, "x.ftml", ft.FilePath())
	require.False(t, ft.Modified())

	require.True(t, r.Save(ft))
	require.Equal(t, []string{"x.ftml", "x.ftml"}, codec.savedPaths)
	require.Len(t, dlg.confirms, 1, "plain save confirms the known path exactly once")
}

func TestSaveAsRejectsWrongExtension(t *testing.T) {
	t.Parallel()
	codec := &recordingCodec{}
	dlg := &stubDialog{}
	r := NewRegistry(dlg, codec.codec())
	ft := r.New(template(), true)

	require.False(t, r.SaveAs(ft, "x.txt"))
	require.Empty(t, codec.savedPaths)
	require.Len(t, dlg.warns, 1)
}

func TestSaveWithoutPathPromptsForName(t *testing.T) {
	t.Parallel()
	codec := &recordingCodec{}
	dlg := &stubDialog{saveName: "fresh.ftml"}
	r := NewRegistry(dlg, codec.codec())
	ft := r.New(template(), true)

	require.True(t, r.Save(ft))
	require.Equal(t, []string{"fresh.ftml"}, codec.savedPaths)
	require.Equal(t, "fresh.ftml", ft.FilePath())
}

func TestSaveCancelledPrompt(t *testing.T) {
	t.Parallel()
	codec := &recordingCodec{}
	dlg := &stubDialog{saveName: ""}
	r := NewRegistry(dlg, codec.codec())
	ft := r.New(template(), true)

	require.False(t, r.Save(ft))
	require.Empty(t, codec.savedPaths)
}

type recordingBinder struct {
	bound []*FlightTrack
}

func (b *recordingBinder) RebindAll(ft *FlightTrack) { b.bound = append(b.bound, ft) }

func TestSetActiveNotifiesViewsAndLabel(t *testing.T) {
	t.Parallel()
	r := NewRegistry(&stubDialog{}, (&recordingCodec{}).codec())
	binder := &recordingBinder{}
	var labels []string
	r.Views = binder
	r.ActiveNameChanged = func(name string) { labels = append(labels, name) }

	first := r.New(template(), true)
	second := r.New(template(), true)

	require.Equal(t, []*FlightTrack{first, second}, binder.bound)
	require.Equal(t, []string{first.Name(), second.Name()}, labels)
}

func TestSetActiveIgnoresForeignTrack(t *testing.T) {
	t.Parallel()
	r := NewRegistry(&stubDialog{}, (&recordingCodec{}).codec())
	ft := r.New(template(), true)

	r.SetActive(NewFlightTrack("elsewhere", template()))
	require.Same(t, ft, r.Active())
}

func TestRenameActiveRefreshesLabelSynchronously(t *testing.T) {
	t.Parallel()
	r := NewRegistry(&stubDialog{}, (&recordingCodec{}).codec())
	var label string
	r.ActiveNameChanged = func(name string) { label = name }
	ft := r.New(template(), true)
	other := r.New(template(), false)

	r.Rename(ft, "mission alpha")
	require.Equal(t, "mission alpha", label)
	require.Equal(t, "mission alpha", ft.Name())

	r.Rename(other, "mission beta")
	require.Equal(t, "mission alpha", label, "renaming an inactive track leaves the label alone")
}

func TestDuplicateNamesStayPermitted(t *testing.T) {
	t.Parallel()
	r := NewRegistry(&stubDialog{}, (&recordingCodec{}).codec())
	a := r.New(template(), true)
	b := r.New(template(), false)

	r.Rename(a, "same")
	r.Rename(b, "same")
	require.Equal(t, a.Name(), b.Name())
	require.Equal(t, 2, r.Len())
}
