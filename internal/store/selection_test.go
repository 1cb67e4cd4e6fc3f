package store

import (
	"context"
	"testing"
)

func TestSelectNote(t *testing.T) {
	st, _ := newTestStore()
	ctx := context.Background()

	note, _ := st.CreateNote(ctx, nil)
	other, _ := st.CreateNote(ctx, nil)

	st.SelectNote(&note.ID)
	selected, _ := st.Selection()
	if selected == nil || *selected != note.ID {
		t.Errorf("Selection() = %v, want %q", selected, note.ID)
	}

	// Unknown id clears the selection instead of dangling.
	st.SelectNote(strptr("no-such-note"))
	selected, _ = st.Selection()
	if selected != nil {
		t.Errorf("Selection() = %v after unknown id, want nil", *selected)
	}

	st.SelectNote(&other.ID)
	st.SelectNote(nil)
	selected, _ = st.Selection()
	if selected != nil {
		t.Errorf("Selection() = %v after nil select, want nil", *selected)
	}
}

func TestSelectFolder(t *testing.T) {
	st, _ := newTestStore()
	ctx := context.Background()

	folder, _ := st.CreateFolder(ctx, "Drafts", nil)

	st.SelectFolder(&folder.ID)
	_, selected := st.Selection()
	if selected == nil || *selected != folder.ID {
		t.Errorf("Selection() folder = %v, want %q", selected, folder.ID)
	}

	st.SelectFolder(nil)
	_, selected = st.Selection()
	if selected != nil {
		t.Errorf("Selection() folder = %v after nil select, want nil", *selected)
	}
}

func TestDeleteFolderClearsFolderSelection(t *testing.T) {
	st, _ := newTestStore()
	ctx := context.Background()

	folder, _ := st.CreateFolder(ctx, "Drafts", nil)
	st.SelectFolder(&folder.ID)

	if _, err := st.DeleteFolder(ctx, folder.ID); err != nil {
		t.Fatalf("DeleteFolder() error = %v", err)
	}

	_, selected := st.Selection()
	if selected != nil {
		t.Errorf("folder selection = %v after delete, want nil", *selected)
	}
}

func TestSelectionReturnsCopies(t *testing.T) {
	st, _ := newTestStore()

	note, _ := st.CreateNote(context.Background(), nil)
	st.SelectNote(&note.ID)

	selected, _ := st.Selection()
	*selected = "mutated"

	again, _ := st.Selection()
	if again == nil || *again != note.ID {
		t.Error("Selection() exposed internal state to mutation")
	}
}
