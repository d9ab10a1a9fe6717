package ui

import "github.com/vango-dev/vango-ui/pkg/vdom"

// --- Kanban Board ---

type KanbanBoardConfig struct {
	BaseConfig
}

func (c *KanbanBoardConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type KanbanBoardOption = Option[*KanbanBoardConfig]

func KanbanBoard(opts ...KanbanBoardOption) *vdom.VNode {
	c := &KanbanBoardConfig{}
	for _, opt := range opts {
		opt(c)
	}

	finalClass := CN(
		"flex h-full w-full gap-4 overflow-x-auto p-4 bg-muted/20",
		c.Classes,
	)
	return element("div", finalClass, &c.BaseConfig)
}

// --- Kanban Column ---

type KanbanColumnConfig struct {
	BaseConfig
	ID    string
	Title string
}

func (c *KanbanColumnConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type KanbanColumnOption = Option[*KanbanColumnConfig]

func KanbanColumnID(id string) KanbanColumnOption {
	return func(c *KanbanColumnConfig) { c.ID = id }
}

func KanbanColumnTitle(title string) KanbanColumnOption {
	return func(c *KanbanColumnConfig) { c.Title = title }
}

func KanbanColumn(opts ...KanbanColumnOption) *vdom.VNode {
	c := &KanbanColumnConfig{}
	for _, opt := range opts {
		opt(c)
	}

	finalClass := CN(
		"flex w-80 shrink-0 flex-col rounded-lg bg-secondary",
		c.Classes,
	)

	// Shared group allows moving cards between columns
	sortable := vdom.Sortable(vdom.SortableConfig{
		Group:      "kanban",
		Animation:  150,
		GhostClass: "opacity-50",
	})

	var header *vdom.VNode
	if c.Title != "" {
		header = vdom.H3(
			vdom.Class("p-4 font-semibold text-secondary-foreground"),
			vdom.Text(c.Title),
		)
	}

	// min-h keeps an empty column a valid drop target
	contentOpts := []any{
		vdom.Class("flex flex-col gap-2 p-4 pt-0 min-h-[50px]"),
		sortable,
	}
	contentOpts = append(contentOpts, c.Options...)

	return vdom.Div(
		vdom.Class(finalClass),
		vdom.Data("column-id", c.ID),
		header,
		vdom.Div(contentOpts...),
	)
}

// --- Kanban Card ---

type KanbanCardConfig struct {
	BaseConfig
	ID string
}

func (c *KanbanCardConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type KanbanCardOption = Option[*KanbanCardConfig]

func KanbanCardID(id string) KanbanCardOption {
	return func(c *KanbanCardConfig) { c.ID = id }
}

func KanbanCard(opts ...KanbanCardOption) *vdom.VNode {
	c := &KanbanCardConfig{}
	for _, opt := range opts {
		opt(c)
	}

	finalClass := CN(
		"cursor-grab rounded border bg-card p-3 text-card-foreground shadow-sm hover:ring-2 hover:ring-primary/50",
		c.Classes,
	)

	var dataID any
	if c.ID != "" {
		dataID = vdom.Data("id", c.ID)
	}
	return element("div", finalClass, &c.BaseConfig, dataID)
}
