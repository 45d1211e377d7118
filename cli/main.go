package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const pollInterval = 5 * time.Second

// Styling
var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	preparingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#ff9f0a")).
			Padding(0, 1)

	readyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#30d158")).
			Padding(0, 1)

	deliveredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#0a84ff")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#ff453a")).
			Padding(0, 1)
)

// Model defines the kitchen dashboard state.
type Model struct {
	ordersTable table.Model
	orders      []Order
	board       Board
	client      *ApiClient
	lastPoll    time.Time
	error       string
}

// Custom message types for the tea.Model
type tickMsg time.Time

type ordersMsg struct {
	orders []Order
}

type errorMsg struct {
	err string
}

func initialModel() Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Client", Width: 14},
		{Title: "Plat", Width: 24},
		{Title: "Statut", Width: 16},
		{Title: "Heure", Width: 10},
	}
	ordersTable := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(14),
	)

	return Model{
		ordersTable: ordersTable,
		client:      NewApiClient(),
	}
}

// Init starts the first fetch and the polling timer.
func (m Model) Init() tea.Cmd {
	return tea.Batch(fetchOrders(m.client), pollTick())
}

// pollTick schedules the next dashboard refresh. The timer keeps
// running no matter how the previous poll went.
func pollTick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles UI updates.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			return m, fetchOrders(m.client)
		case "enter":
			// Advance the selected order one step.
			if order, ok := m.selectedOrder(); ok {
				if next := NextStatus(order.OrderStatusID); next != 0 {
					return m, updateStatus(m.client, order.ID, next)
				}
			}
		case "1", "2", "3":
			// Set the selected order to an explicit status.
			if order, ok := m.selectedOrder(); ok {
				return m, updateStatus(m.client, order.ID, int(msg.String()[0]-'0'))
			}
		}
	case tickMsg:
		return m, tea.Batch(fetchOrders(m.client), pollTick())
	case ordersMsg:
		m.orders = msg.orders
		m.board = PartitionOrders(msg.orders)
		m.lastPoll = time.Now()
		m.error = ""
		m.ordersTable.SetRows(ordersToRows(msg.orders))
		return m, nil
	case errorMsg:
		// Keep the previous board; show the error until the next
		// successful poll replaces it.
		m.error = msg.err
		return m, nil
	}

	var cmd tea.Cmd
	m.ordersTable, cmd = m.ordersTable.Update(msg)
	return m, cmd
}

// View renders the kitchen dashboard.
func (m Model) View() string {
	header := titleStyle.Render("Adalicious — Vue cuisine") + "\n\n"
	header += preparingStyle.Render(fmt.Sprintf("🔥 En préparation (%d)", len(m.board.Preparing))) + " "
	header += readyStyle.Render(fmt.Sprintf("✅ Prêtes (%d)", len(m.board.Ready))) + " "
	header += deliveredStyle.Render(fmt.Sprintf("📦 Livrées (%d)", len(m.board.Delivered))) + "\n\n"

	footer := "\n'enter' avance la commande sélectionnée, '1/2/3' force un statut, 'r' rafraîchit, 'q' quitte\n"
	if !m.lastPoll.IsZero() {
		footer += fmt.Sprintf("Mis à jour à %s\n", m.lastPoll.Format("15:04:05"))
	}
	if m.error != "" {
		footer += errorStyle.Render(m.error) + "\n"
	}

	return docStyle.Render(header + m.ordersTable.View() + footer)
}

// selectedOrder maps the table cursor back to an order.
func (m Model) selectedOrder() (Order, bool) {
	idx := m.ordersTable.Cursor()
	if idx < 0 || idx >= len(m.orders) {
		return Order{}, false
	}
	return m.orders[idx], true
}

// fetchOrders retrieves the order board from the API.
func fetchOrders(client *ApiClient) tea.Cmd {
	return func() tea.Msg {
		orders, err := client.GetOrders()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("❌ Erreur: %v", err)}
		}
		return ordersMsg{orders: orders}
	}
}

// updateStatus changes an order's status, then refreshes the board.
func updateStatus(client *ApiClient, id uint, statusID int) tea.Cmd {
	return func() tea.Msg {
		if _, err := client.UpdateOrderStatus(id, statusID); err != nil {
			return errorMsg{err: fmt.Sprintf("❌ Erreur mise à jour: %v", err)}
		}
		orders, err := client.GetOrders()
		if err != nil {
			return errorMsg{err: fmt.Sprintf("❌ Erreur: %v", err)}
		}
		return ordersMsg{orders: orders}
	}
}

// ordersToRows converts API orders to table rows.
func ordersToRows(orders []Order) []table.Row {
	rows := make([]table.Row, len(orders))
	for i, order := range orders {
		image := order.Image
		if image == "" {
			image = "🍽️"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", order.ID),
			order.Firstname,
			fmt.Sprintf("%s %s", image, order.PlateName),
			order.StatusName,
			order.CreatedAt.Local().Format("15:04:05"),
		}
	}
	return rows
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v", err)
		os.Exit(1)
	}
}
