// Package app contains the root component and the page shell it is mounted
// into.
package app

import (
	"github.com/vango-dev/vango-ui/app/components/ui"
	"github.com/vango-dev/vango-ui/pkg/vdom"
)

// Card is a single task on the board.
type Card struct {
	ID    string
	Title string
}

// Column is a titled list of cards.
type Column struct {
	ID    string
	Title string
	Cards []Card
}

// Board is the data rendered by the root component.
type Board struct {
	Title   string
	Columns []Column
}

// DefaultBoard returns the demo board shown on the index page.
func DefaultBoard() Board {
	return Board{
		Title: "Board",
		Columns: []Column{
			{ID: "todo", Title: "To Do", Cards: []Card{{ID: "card-1", Title: "Task 1"}, {ID: "card-2", Title: "Task 2"}}},
			{ID: "in-progress", Title: "In Progress", Cards: []Card{{ID: "card-3", Title: "Task 3"}}},
			{ID: "done", Title: "Done", Cards: []Card{{ID: "card-4", Title: "Task 4"}}},
		},
	}
}

// Root returns the root component for board.
func Root(board Board) vdom.Component {
	return vdom.FuncComponent(func() *vdom.VNode {
		columns := make([]*vdom.VNode, 0, len(board.Columns))
		for _, col := range board.Columns {
			columns = append(columns, column(col))
		}

		return vdom.Main(
			vdom.Class(ui.CN("app-shell flex h-full flex-col gap-4")),
			vdom.Header(
				vdom.Class("flex items-center justify-between"),
				vdom.H1(vdom.Class("board-title"), vdom.Text(board.Title)),
				ui.Button(
					ui.Size(ui.ButtonSizeSm),
					ui.Child[*ui.ButtonConfig](vdom.Text("New card")),
				),
			),
			ui.KanbanBoard(ui.Child[*ui.KanbanBoardConfig](columns...)),
		)
	})
}

func column(col Column) *vdom.VNode {
	cards := make([]*vdom.VNode, 0, len(col.Cards))
	for _, c := range col.Cards {
		cards = append(cards, ui.KanbanCard(
			ui.KanbanCardID(c.ID),
			ui.Child[*ui.KanbanCardConfig](vdom.Text(c.Title)),
		))
	}

	return ui.KanbanColumn(
		ui.KanbanColumnID(col.ID),
		ui.KanbanColumnTitle(col.Title),
		ui.ClassIf[*ui.KanbanColumnConfig](len(col.Cards) == 0, "opacity-70"),
		ui.Child[*ui.KanbanColumnConfig](cards...),
	)
}
