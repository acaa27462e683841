package utils

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// X11Pointer reads the global pointer position from the X server. A window
// placed behind the desktop never receives pointer events, so wallpaper mode
// polls the root window instead.
type X11Pointer struct {
	conn *xgb.Conn
	root xproto.Window
}

func NewX11Pointer() (*X11Pointer, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, err
	}

	setup := xproto.Setup(conn)
	return &X11Pointer{
		conn: conn,
		root: setup.DefaultScreen(conn).Root,
	}, nil
}

func (p *X11Pointer) Position() (int, int, error) {
	reply, err := xproto.QueryPointer(p.conn, p.root).Reply()
	if err != nil {
		return 0, 0, err
	}
	return int(reply.RootX), int(reply.RootY), nil
}

func (p *X11Pointer) Close() {
	p.conn.Close()
}
