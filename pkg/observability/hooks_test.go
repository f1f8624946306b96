package observability

import "testing"

type recordingSessionHooks struct {
	enters, commits, rejects, cancels int
}

func (r *recordingSessionHooks) OnEnterEdit(string)        { r.enters++ }
func (r *recordingSessionHooks) OnCommit(string, int, int) { r.commits++ }
func (r *recordingSessionHooks) OnReject(string, int, int) { r.rejects++ }
func (r *recordingSessionHooks) OnCancel(string)           { r.cancels++ }

func TestSessionHooksRegistration(t *testing.T) {
	defer Reset()

	rec := &recordingSessionHooks{}
	SetSessionHooks(rec)

	Session().OnEnterEdit("a")
	Session().OnCommit("a", 2, 3)
	Session().OnReject("a", 4, 4)
	Session().OnCancel("a")

	if rec.enters != 1 || rec.commits != 1 || rec.rejects != 1 || rec.cancels != 1 {
		t.Errorf("hooks not forwarded: %+v", rec)
	}
}

func TestSetHooksIgnoresNil(t *testing.T) {
	defer Reset()

	SetSessionHooks(nil)
	if Session() == nil {
		t.Fatal("nil registration must keep the no-op default")
	}
	SetStoreHooks(nil)
	if Store() == nil {
		t.Fatal("nil registration must keep the no-op default")
	}

	// No-op hooks must be callable without side effects.
	Session().OnEnterEdit("x")
	Store().OnHit("memory", "default")
}

func TestReset(t *testing.T) {
	rec := &recordingSessionHooks{}
	SetSessionHooks(rec)
	Reset()

	Session().OnEnterEdit("a")
	if rec.enters != 0 {
		t.Error("Reset must detach custom hooks")
	}
}
