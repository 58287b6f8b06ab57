package cli

import "github.com/MikeBiancalana/bullet/list"

// sampleList builds the nested list shown by the demo TUI and the glyphs
// preview: three levels deep, with siblings at every level so each depth's
// marker is visible.
func sampleList() *list.List {
	return list.New(
		list.NewItem(
			list.Text("Groceries"),
			list.New(
				list.NewItem(
					list.Text("Produce"),
					list.New(
						list.NewItem(list.Text("Apples")),
						list.NewItem(list.Text("Spinach")),
					),
				),
				list.NewItem(
					list.Text("Pantry"),
					list.New(
						list.NewItem(list.Text("Rice")),
						list.NewItem(list.Text("Olive oil")),
					),
				),
			),
		),
		list.NewItem(
			list.Text("Errands"),
			list.New(
				list.NewItem(list.Text("Post office")),
				list.NewItem(list.Text("Library")),
			),
		),
		list.NewItem(list.Text("Call the plumber")),
	)
}
