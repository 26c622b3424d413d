/*
Package roundui is a small pure go UI toolkit for windows with absolutely placed, custom painted widgets, on top of devdraw.

Start with NewDUI to create a DUI: essentially a window and all the UI state.

The user interface is a hierarchy of UIs, such as Place and RoundedButton, named after the interface UI they all implement. UIs are kept in a Kid, which tracks their rectangle and layout/draw state. Use NewKids to build up the UIs for your application.

Place positions its kids at explicit pixel coordinates, through a function you provide. There is no flow or grid layout.

Widgets are painted by composition: a RoundedButton holds a Painter for its background and a Border for its outline. Painters draw with github.com/gogpu/gg into an anti-aliased RGBA face, RenderFace, that is uploaded to the display once per size. Border.Insets reserves space around the label; RoundedBorder reserves its radius on every side.

You are in charge of the main event loop, receiving mouse/keyboard/window events from the dui.Inputs channel, and passing them on unchanged to dui.Input. All callbacks and functions on UIs are called from inside dui.Input. If you need to change the UI from another goroutine, send a function on dui.Call. Errors from devdraw arrive on dui.Error, which is closed when the window is closed.
*/
package roundui
