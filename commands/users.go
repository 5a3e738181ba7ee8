package commands

import (
  "log"

  "github.com/urfave/cli/v2"
  "gorm.io/gorm"

  "chirper.local/chirper/common"
  "chirper.local/chirper/repositories"
)

type UsersHandler struct {
  Db         *gorm.DB
  Repository *repositories.UsersRepository
}

func NewUsersCommand() *cli.Command {
  var h UsersHandler
  return &cli.Command{
    Name:  "users",
    Usage: "",
    Before: func(c *cli.Context) error {
      h = UsersHandler{
        Db: common.NewDB(),
      }
      h.Repository = &repositories.UsersRepository{
        Db: h.Db,
      }
      return nil
    },
    Subcommands: []*cli.Command{
      {
        Name:  "create",
        Usage: "",
        Action: func(c *cli.Context) error {
          name := c.Args().Get(0)
          if name == "" {
            log.Fatal("name can not be empty")
            return nil
          }
          password := c.Args().Get(1)
          if password == "" {
            log.Fatal("password can not be empty")
            return nil
          }
          avatar := c.Args().Get(2)
          if err := h.Create(name, password, avatar); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
    },
  }
}

func (h *UsersHandler) Create(name string, password string, avatar string) error {
  log.Println("users create...")

  user, err := h.Repository.Create(name, password, avatar)
  if err != nil {
    return err
  }
  log.Println("user created", user.ID)

  return nil
}
