package shop

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	economydto "lifeos/internal/modules/economy/dto"
	ledgerdto "lifeos/internal/modules/ledger/dto"
	"lifeos/internal/ui/theme"
)

type ShopPort interface {
	ListGoods(ctx context.Context) ([]economydto.GoodOutput, error)
	Purchase(ctx context.Context, itemName string) (economydto.PurchaseOutput, error)
	Balance(ctx context.Context) (ledgerdto.FinanceOutput, error)
}

type GoodsLoadedMsg struct {
	Goods []economydto.GoodOutput
	Err   error
}

type BalanceMsg struct {
	Finance ledgerdto.FinanceOutput
	Err     error
}

// PurchasedMsg bubbles to the app level so the status bar can report the
// outcome.
type PurchasedMsg struct {
	Out economydto.PurchaseOutput
	Err error
}

type goodItem struct {
	good economydto.GoodOutput
}

func (i goodItem) Title() string       { return i.good.Icon + " " + i.good.Name }
func (i goodItem) Description() string { return fmt.Sprintf("%d credits", i.good.Price) }
func (i goodItem) FilterValue() string { return i.good.Name }

type Model struct {
	port    ShopPort
	goods   list.Model
	finance ledgerdto.FinanceOutput
	width   int
	height  int
}

func New(port ShopPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Yellow).BorderForeground(theme.Yellow)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Blue).BorderForeground(theme.Yellow)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Reward Shop"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return Model{port: port, goods: l}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadGoodsCmd(), m.loadBalanceCmd())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.goods.SetSize(m.width*6/10, m.height)

	case GoodsLoadedMsg:
		if msg.Err != nil {
			m.goods.Title = "catalog load failed: " + msg.Err.Error()
			break
		}
		items := make([]list.Item, len(msg.Goods))
		for i, good := range msg.Goods {
			items[i] = goodItem{good: good}
		}
		cmds = append(cmds, m.goods.SetItems(items))

	case BalanceMsg:
		if msg.Err == nil {
			m.finance = msg.Finance
		}

	case PurchasedMsg:
		// Success or failure, the balance pane must reflect the ledger.
		cmds = append(cmds, m.loadBalanceCmd())
	}

	var lCmd tea.Cmd
	m.goods, lCmd = m.goods.Update(msg)
	cmds = append(cmds, lCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	listW := m.width * 6 / 10
	sideW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.goods.View())

	var side string
	side += theme.Title.Render("Wallet") + "\n\n"
	side += theme.Muted.Render("earned: ") + fmt.Sprintf("%d", m.finance.TotalMinutes) + "\n"
	side += theme.Muted.Render("spent:  ") + fmt.Sprintf("%d", m.finance.TotalSpent) + "\n"
	side += theme.Hot.Render(fmt.Sprintf("balance: %d", m.finance.Balance)) + "\n\n"
	side += theme.Muted.Render("enter: buy the highlighted reward")

	sidePane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Background(theme.Mantle).
		Width(sideW - 2).
		Height(m.height - 2).
		Padding(1).
		Render(side)

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, sidePane)
}

// BuySelected purchases the highlighted good.
func (m Model) BuySelected() tea.Cmd {
	item, ok := m.goods.SelectedItem().(goodItem)
	if !ok {
		return nil
	}
	return m.Buy(item.good.Name)
}

// Buy purchases a good by name.
func (m Model) Buy(name string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Purchase(context.Background(), name)
		return PurchasedMsg{Out: out, Err: err}
	}
}

// Filtering reports whether the list's search filter is currently active.
func (m Model) Filtering() bool {
	return m.goods.FilterState() == list.Filtering
}

func (m Model) loadGoodsCmd() tea.Cmd {
	return func() tea.Msg {
		goods, err := m.port.ListGoods(context.Background())
		return GoodsLoadedMsg{Goods: goods, Err: err}
	}
}

func (m Model) loadBalanceCmd() tea.Cmd {
	return func() tea.Msg {
		finance, err := m.port.Balance(context.Background())
		return BalanceMsg{Finance: finance, Err: err}
	}
}
