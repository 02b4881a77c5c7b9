package main

import (
	"log"

	"github.com/gotk3/gotk3/gtk"
)

// ShowErrorDialog shows err in a modal GTK message box and blocks until it
// is dismissed. It does nothing if GTK cannot be initialised.
func ShowErrorDialog(title string, err error) {
	if initErr := gtk.InitCheck(nil); initErr != nil {
		log.Println("error dialog unavailable:", initErr)
		return
	}

	dialog := gtk.MessageDialogNew(
		nil,
		gtk.DIALOG_MODAL,
		gtk.MESSAGE_ERROR,
		gtk.BUTTONS_CLOSE,
		"%s",
		err.Error(),
	)
	dialog.SetTitle(title)

	if area, err := dialog.GetMessageArea(); err == nil {
		area.GetChildren().Foreach(selectableLabel)
	}

	dialog.SetKeepAbove(true)
	dialog.Run()
	dialog.Destroy()

	for gtk.EventsPending() {
		gtk.MainIteration()
	}
}

// selectableLabel lets the error text be copied when child is a label.
func selectableLabel(child interface{}) {
	widget, ok := child.(*gtk.Widget)
	if !ok || widget.TypeFromInstance().Name() != "GtkLabel" {
		return
	}
	if label, err := gtk.WidgetToLabel(widget); err == nil {
		label.SetSelectable(true)
	}
}
