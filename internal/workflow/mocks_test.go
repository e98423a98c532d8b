package workflow

import (
	"context"

	"github.com/Binkle/DefaultApplication/internal/assoc"
	"github.com/Binkle/DefaultApplication/internal/picker"
)

// fakeGateway scripts each gateway operation and counts calls.
type fakeGateway struct {
	permission    bool
	permissionErr error

	openErr   error
	openCalls int

	listResult []assoc.Association
	listErr    error
	listCalls  int

	setErr   error
	setCalls int
	setExt   string
	setPath  string

	addResult []assoc.Association
	addErr    error
	addCalls  int
	addExt    string
}

func (f *fakeGateway) QueryPermission(ctx context.Context) (bool, error) {
	return f.permission, f.permissionErr
}

func (f *fakeGateway) OpenPermissionSettings(ctx context.Context) error {
	f.openCalls++
	return f.openErr
}

func (f *fakeGateway) ListAssociations(ctx context.Context) ([]assoc.Association, error) {
	f.listCalls++
	return f.listResult, f.listErr
}

func (f *fakeGateway) SetDefaultApplication(ctx context.Context, extension, applicationPath string) error {
	f.setCalls++
	f.setExt = extension
	f.setPath = applicationPath
	return f.setErr
}

func (f *fakeGateway) AddExtension(ctx context.Context, extension string) ([]assoc.Association, error) {
	f.addCalls++
	f.addExt = extension
	return f.addResult, f.addErr
}

// fakePicker returns a scripted choice and records the constraints it saw.
type fakePicker struct {
	path  string
	err   error
	calls int

	gotConstraints picker.Constraints
}

func (f *fakePicker) Choose(ctx context.Context, constraints picker.Constraints) (string, error) {
	f.calls++
	f.gotConstraints = constraints
	return f.path, f.err
}

func associations(exts ...string) []assoc.Association {
	list := make([]assoc.Association, 0, len(exts))
	for _, ext := range exts {
		list = append(list, assoc.Association{
			Extension:       ext,
			ApplicationName: "App for " + ext,
			ApplicationPath: "/Applications/" + ext + ".app",
		})
	}
	return list
}
