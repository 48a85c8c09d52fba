package gui

import (
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"filter-explorer/internal/filters"
)

const categoryPrefix = "category:"

// FilterList is a tree of registered filters grouped by category.
type FilterList struct {
	categories   map[string][]string
	order        []string
	displayNames map[string]string
	tree         *widget.Tree

	onSelected func(name string)
}

func NewFilterList(onSelected func(name string)) *FilterList {
	fl := &FilterList{
		categories:   filters.Categories(),
		displayNames: make(map[string]string),
		onSelected:   onSelected,
	}
	for category, names := range fl.categories {
		fl.order = append(fl.order, category)
		for _, name := range names {
			if f, err := filters.ByName(name); err == nil {
				fl.displayNames[name] = f.DisplayName()
			}
		}
	}
	sort.Strings(fl.order)

	fl.tree = widget.NewTree(fl.childUIDs, fl.isBranch, fl.createNode, fl.updateNode)
	fl.tree.OnSelected = fl.selected
	for _, category := range fl.order {
		fl.tree.OpenBranch(categoryPrefix + category)
	}
	return fl
}

func (fl *FilterList) childUIDs(uid widget.TreeNodeID) []widget.TreeNodeID {
	if uid == "" {
		ids := make([]widget.TreeNodeID, 0, len(fl.order))
		for _, category := range fl.order {
			ids = append(ids, categoryPrefix+category)
		}
		return ids
	}
	if category, ok := strings.CutPrefix(uid, categoryPrefix); ok {
		return fl.categories[category]
	}
	return nil
}

func (fl *FilterList) isBranch(uid widget.TreeNodeID) bool {
	return uid == "" || strings.HasPrefix(uid, categoryPrefix)
}

func (fl *FilterList) createNode(branch bool) fyne.CanvasObject {
	return widget.NewLabel("")
}

func (fl *FilterList) updateNode(uid widget.TreeNodeID, branch bool, o fyne.CanvasObject) {
	o.(*widget.Label).SetText(fl.label(uid))
}

// label is the category name for branches and the display name for filters.
func (fl *FilterList) label(uid widget.TreeNodeID) string {
	if category, ok := strings.CutPrefix(uid, categoryPrefix); ok {
		return category
	}
	if name, ok := fl.displayNames[uid]; ok {
		return name
	}
	return uid
}

func (fl *FilterList) selected(uid widget.TreeNodeID) {
	if fl.isBranch(uid) || fl.onSelected == nil {
		return
	}
	fl.onSelected(uid)
}

// Select highlights the named filter and reports it as selected.
func (fl *FilterList) Select(name string) {
	fl.tree.Select(name)
}

func (fl *FilterList) GetContainer() fyne.CanvasObject {
	return fl.tree
}
