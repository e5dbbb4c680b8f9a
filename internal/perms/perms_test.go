package perms

import (
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/starford/ehwaz/internal/store"
)

type fixture struct {
	db      *store.DB
	teamID  uuid.UUID
	project uuid.UUID
	file    uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f, err := os.CreateTemp("", "ehwaz-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	db, err := store.Open(f.Name())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	fx := &fixture{db: db, teamID: uuid.New(), project: uuid.New(), file: uuid.New()}
	if err := store.InsertTeam(db.Conn(), &store.Team{ID: fx.teamID, Name: "team"}); err != nil {
		t.Fatal(err)
	}
	if err := store.InsertProject(db.Conn(), &store.Project{ID: fx.project, TeamID: fx.teamID, Name: "project"}); err != nil {
		t.Fatal(err)
	}
	if err := store.InsertFile(db.Conn(), &store.File{ID: fx.file, ProjectID: fx.project, Name: "file", Content: []byte(`{}`)}); err != nil {
		t.Fatal(err)
	}
	return fx
}

func TestCanEditFile(t *testing.T) {
	tests := []struct {
		name  string
		grant func(t *testing.T, fx *fixture, profileID uuid.UUID)
		want  bool
	}{
		{
			name:  "no grant",
			grant: func(*testing.T, *fixture, uuid.UUID) {},
			want:  false,
		},
		{
			name: "direct file grant",
			grant: func(t *testing.T, fx *fixture, profileID uuid.UUID) {
				if err := store.InsertFileGrant(fx.db.Conn(), fx.file, store.Grant{ProfileID: profileID, CanEdit: true}); err != nil {
					t.Fatal(err)
				}
			},
			want: true,
		},
		{
			name: "project grant",
			grant: func(t *testing.T, fx *fixture, profileID uuid.UUID) {
				if err := store.InsertProjectGrant(fx.db.Conn(), fx.project, store.Grant{ProfileID: profileID, IsAdmin: true}); err != nil {
					t.Fatal(err)
				}
			},
			want: true,
		},
		{
			name: "team grant",
			grant: func(t *testing.T, fx *fixture, profileID uuid.UUID) {
				if err := store.InsertTeamGrant(fx.db.Conn(), fx.teamID, store.Grant{ProfileID: profileID, IsOwner: true}); err != nil {
					t.Fatal(err)
				}
			},
			want: true,
		},
		{
			name: "grant with no capability",
			grant: func(t *testing.T, fx *fixture, profileID uuid.UUID) {
				if err := store.InsertFileGrant(fx.db.Conn(), fx.file, store.Grant{ProfileID: profileID}); err != nil {
					t.Fatal(err)
				}
			},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture(t)
			profileID := uuid.New()
			tt.grant(t, fx, profileID)

			got, err := CanEditFile(fx.db.Conn(), profileID, fx.file)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("CanEditFile = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanEditProject(t *testing.T) {
	fx := newFixture(t)
	profileID := uuid.New()

	ok, err := CanEditProject(fx.db.Conn(), profileID, fx.project)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("edit allowed without a grant")
	}

	// A team grant covers every project in the team.
	if err := store.InsertTeamGrant(fx.db.Conn(), fx.teamID, store.Grant{ProfileID: profileID, CanEdit: true}); err != nil {
		t.Fatal(err)
	}
	ok, err = CanEditProject(fx.db.Conn(), profileID, fx.project)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("team grant did not reach the project")
	}
}

func TestCanEditTeam(t *testing.T) {
	fx := newFixture(t)
	profileID := uuid.New()

	// A file grant never reaches upward to the team.
	if err := store.InsertFileGrant(fx.db.Conn(), fx.file, store.FullGrant(profileID)); err != nil {
		t.Fatal(err)
	}
	ok, err := CanEditTeam(fx.db.Conn(), profileID, fx.teamID)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("file grant escalated to team edit")
	}

	if err := store.InsertTeamGrant(fx.db.Conn(), fx.teamID, store.Grant{ProfileID: profileID, CanEdit: true}); err != nil {
		t.Fatal(err)
	}
	ok, err = CanEditTeam(fx.db.Conn(), profileID, fx.teamID)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("direct team grant denied")
	}
}
