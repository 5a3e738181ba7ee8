package commands

import (
  "log"

  "github.com/urfave/cli/v2"
  "gorm.io/gorm"

  "chirper.local/chirper/common"
  "chirper.local/chirper/repositories"
  jwtRepositories "chirper.local/chirper/repositories/jwt"
)

type TokenHandler struct {
  Db              *gorm.DB
  UsersRepository *repositories.UsersRepository
  Repository      *jwtRepositories.TokenRepository
}

func NewTokenCommand() *cli.Command {
  var h TokenHandler
  return &cli.Command{
    Name:  "token",
    Usage: "",
    Before: func(c *cli.Context) error {
      h = TokenHandler{
        Db: common.NewDB(),
      }
      h.UsersRepository = &repositories.UsersRepository{
        Db: h.Db,
      }
      h.Repository = &jwtRepositories.TokenRepository{}
      return nil
    },
    Subcommands: []*cli.Command{
      {
        Name:  "issue",
        Usage: "",
        Action: func(c *cli.Context) error {
          name := c.Args().Get(0)
          if name == "" {
            log.Fatal("name can not be empty")
            return nil
          }
          if err := h.Issue(name); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
    },
  }
}

func (h *TokenHandler) Issue(name string) error {
  log.Println("token issuing...")

  user, err := h.UsersRepository.Get(name)
  if err != nil {
    return err
  }
  accessToken, err := h.Repository.AccessToken(user.ID)
  if err != nil {
    return err
  }
  log.Println("access token", accessToken)

  return nil
}
