package ui

import (
	"strings"
	"testing"

	"github.com/vango-dev/vango-ui/pkg/vdom"
)

func TestCN(t *testing.T) {
	if got := CN("px-2 py-1", nil, false, "p-3"); got != "p-3" {
		t.Errorf("expected p-3, got %q", got)
	}
	if got := CN(nil, false, ""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestButton(t *testing.T) {
	btn := Button(Variant(ButtonVariantPrimary), Class[*ButtonConfig]("my-class"))
	if btn.Tag != "button" {
		t.Errorf("expected tag button, got %s", btn.Tag)
	}

	classVal, ok := btn.Props["class"].(string)
	if !ok {
		t.Error("expected class prop")
	}

	if !strings.Contains(classVal, "bg-primary") {
		t.Error("missing primary variant class")
	}
	if !strings.Contains(classVal, "my-class") {
		t.Error("missing custom class")
	}
}

func TestButtonOverridesSize(t *testing.T) {
	btn := Button(Size(ButtonSizeLg), Class[*ButtonConfig]("px-2 h-8"))
	classes := strings.Fields(btn.ClassName())

	for _, want := range []string{"px-2", "h-8"} {
		if !contains(classes, want) {
			t.Errorf("missing override %s in %v", want, classes)
		}
	}
	for _, gone := range []string{"px-8", "h-11"} {
		if contains(classes, gone) {
			t.Errorf("conflicting default %s not removed: %v", gone, classes)
		}
	}
}

func TestButtonDisabled(t *testing.T) {
	btn := Button(ButtonDisabled(true))
	if btn.Props["disabled"] != true {
		t.Errorf("expected disabled, got %v", btn.Props["disabled"])
	}
	if btn.Props["type"] != "button" {
		t.Errorf("expected type button, got %v", btn.Props["type"])
	}
}

func TestDialog(t *testing.T) {
	dlg := Dialog(DialogOpen(false), DialogCloseOnEscape(true))

	if dlg.Tag != "div" {
		t.Errorf("expected tag div, got %s", dlg.Tag)
	}
	if dlg.Props[vdom.HookKey] != HookNameDialog {
		t.Error("missing v-hook attribute")
	}
	if !dlg.HasClass("hidden") || dlg.HasClass("grid") {
		t.Errorf("closed dialog should be hidden, got %q", dlg.ClassName())
	}
	if dlg.Props["data-state"] != "closed" {
		t.Errorf("expected closed state, got %v", dlg.Props["data-state"])
	}

	open := Dialog(DialogOpen(true))
	if open.HasClass("hidden") || !open.HasClass("grid") {
		t.Errorf("open dialog should be visible, got %q", open.ClassName())
	}
}

func TestInput(t *testing.T) {
	inp := Input(InputType("email"), InputPlaceholder("test@example.com"))
	if inp.Tag != "input" {
		t.Errorf("expected tag input, got %s", inp.Tag)
	}

	if inp.Props["type"] != "email" {
		t.Errorf("expected type email, got %v", inp.Props["type"])
	}

	classVal, _ := inp.Props["class"].(string)
	if !strings.Contains(classVal, "bg-background") {
		t.Error("missing default styles")
	}
}

func TestInputInvalid(t *testing.T) {
	inp := Input(InputInvalid(true))
	if !inp.HasClass("border-destructive") || inp.HasClass("border-input") {
		t.Errorf("expected destructive border, got %q", inp.ClassName())
	}
	if inp.Props["aria-invalid"] != "true" {
		t.Error("missing aria-invalid")
	}
}

func TestLabel(t *testing.T) {
	lbl := Label(LabelFor("my-id"), Class[*LabelConfig]("text-red-500"))
	if lbl.Tag != "label" {
		t.Errorf("expected tag label, got %s", lbl.Tag)
	}

	if lbl.Props["for"] != "my-id" {
		t.Errorf("expected for my-id, got %v", lbl.Props["for"])
	}
}

func TestCard(t *testing.T) {
	card := Card(
		Class[*CardConfig]("w-[350px]"),
		Child[*CardConfig](
			CardHeader(Child[*CardHeaderConfig](
				CardTitle(Child[*CardTitleConfig](vdom.Text("Title"))),
			)),
			CardContent(Child[*CardContentConfig](vdom.Text("Content"))),
		),
	)

	if card.Tag != "div" {
		t.Errorf("expected tag div, got %s", card.Tag)
	}

	classVal, _ := card.Props["class"].(string)
	if !strings.Contains(classVal, "rounded-lg") {
		t.Error("missing card styles")
	}

	// Basic hierarchy check
	if len(card.Children) != 2 {
		t.Errorf("expected 2 children, got %d", len(card.Children))
	}
}

func TestClassIf(t *testing.T) {
	card := Card(ClassIf[*CardConfig](false, "shadow-lg"), ClassIf[*CardConfig](true, "border-2"))
	if card.HasClass("shadow-lg") {
		t.Error("unexpected conditional class")
	}
	if !card.HasClass("border-2") || card.HasClass("border") {
		t.Errorf("expected border-2 to replace border, got %q", card.ClassName())
	}
}

func TestKanban(t *testing.T) {
	board := KanbanBoard(
		Class[*KanbanBoardConfig]("bg-gray-100"),
		Child[*KanbanBoardConfig](
			KanbanColumn(
				KanbanColumnID("col-1"),
				KanbanColumnTitle("Todo"),
				Child[*KanbanColumnConfig](
					KanbanCard(
						KanbanCardID("card-1"),
						Child[*KanbanCardConfig](vdom.Text("Task 1")),
					),
				),
			),
		),
	)

	if board.Tag != "div" {
		t.Errorf("expected tag div, got %s", board.Tag)
	}
	if board.HasClass("bg-muted/20") {
		t.Error("board background override not applied")
	}

	col := board.Children[0]
	if col.Props["data-column-id"] != "col-1" {
		t.Errorf("expected column id col-1, got %v", col.Props["data-column-id"])
	}

	// Column children: H3 (title), Div (content + hook)
	contentDiv := col.Children[1]
	if contentDiv.Props[vdom.HookKey] != "Sortable" {
		t.Error("missing Sortable hook in column content")
	}

	card := contentDiv.Children[0]
	if card.Props["data-id"] != "card-1" {
		t.Errorf("expected card id card-1, got %v", card.Props["data-id"])
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
