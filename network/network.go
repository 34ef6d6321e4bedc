package network

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ratel-online/chaos/chaos/game"
	"github.com/ratel-online/chaos/consts"
	"github.com/ratel-online/chaos/database"
	"github.com/ratel-online/chaos/state"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
)

const (
	authTimeout   = 3 * time.Second
	maxNameLength = 16
)

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

// session is one text client, from the auth packet until it hangs up.
type session struct {
	conn *network.Conn
}

func handle(rwc protocol.ReadWriteCloser) error {
	s := &session{conn: network.Wrapper(rwc)}
	defer s.close()

	authInfo, err := s.authenticate()
	if err != nil {
		_ = s.conn.Write(protocol.ErrorPacket(err))
		return err
	}
	player := database.Connected(s.conn, authInfo)
	log.Infof("player %s seated\n", player)
	go state.Run(player)
	defer player.Offline()
	return player.Listening()
}

// authenticate waits for the login packet. A client already seated under the
// same id is turned away.
func (s *session) authenticate() (*model.AuthInfo, error) {
	authChan := make(chan *model.AuthInfo, 1)
	async.Async(func() {
		packet, err := s.conn.Read()
		if err != nil {
			log.Error(err)
			return
		}
		authInfo := &model.AuthInfo{}
		if err := packet.Unmarshal(authInfo); err != nil {
			log.Error(err)
			return
		}
		authChan <- authInfo
	})
	var authInfo *model.AuthInfo
	select {
	case authInfo = <-authChan:
	case <-time.After(authTimeout):
		return nil, consts.ErrorsAuthFail
	}
	if authInfo.ID == 0 || database.GetPlayer(authInfo.ID) != nil {
		return nil, consts.ErrorsAuthFail
	}
	authInfo.Name = playerName(authInfo.Name)
	return authInfo, nil
}

func (s *session) close() {
	if err := s.conn.Close(); err != nil {
		log.Error(err)
	}
}

// playerName trims the client supplied name to something the board can show.
func playerName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return game.DefaultPlayerName
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		name = strings.TrimSpace(string([]rune(name)[:maxNameLength]))
	}
	return name
}
