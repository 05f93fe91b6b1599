package main

import (
	"context"
	"os"

	cli_adapter "github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/in/cli"
	memory_adapter "github.com/JoeShih716/go-mem-bank/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-mem-bank/internal/app/core/usecase"
)

// bankcli 在單一 Process 內執行互動式選單，狀態只存活於本次執行
func main() {
	bank := memory_adapter.NewMutexBank(memory_adapter.Config{})
	coreUseCase := usecase.NewCoreUseCase(bank)

	menu := cli_adapter.NewMenu(coreUseCase, os.Stdin, os.Stdout)
	menu.Run(context.Background())
}
