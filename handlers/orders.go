package handlers

import (
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"brew-and-bite-api/config"
	"brew-and-bite-api/engine"
	"brew-and-bite-api/middleware"
	"brew-and-bite-api/models"
	"brew-and-bite-api/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DineInOrderRequest struct {
	Cart        []models.CartLine `json:"cart" binding:"required,min=1,dive"`
	TableNumber int               `json:"table_number"`
}

type OnlineOrderRequest struct {
	Cart    []models.CartLine `json:"cart" binding:"required,min=1,dive"`
	Address string            `json:"address" binding:"required"`
}

// ConfirmDineInOrder totals the cart, estimates when the kitchen will have it
// ready, persists the order in "preparing", and emails a confirmation.
func ConfirmDineInOrder(c *gin.Context) {
	var req DineInOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing cart information"})
		return
	}

	tableNumber := req.TableNumber
	if tableNumber == 0 {
		tableNumber = rand.Intn(6) + 1
	}

	totals := engine.Totals(req.Cart)
	prep := engine.EstimatePreparation(req.Cart)
	now := time.Now().UTC()

	order := models.DineInOrder{
		OrderID:            fmt.Sprintf("T%d-ORD-%d", tableNumber, rand.Intn(900)+100),
		TableNumber:        tableNumber,
		CustomerName:       middleware.GetName(c),
		UserEmail:          middleware.GetEmail(c),
		Items:              req.Cart,
		Total:              totals.Total,
		Status:             models.StatusPreparing,
		EstimatedReadyTime: now.Add(prep),
	}

	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	go Mail.SendHTML(order.UserEmail,
		fmt.Sprintf("Your Brew & Bite Order (%s) is Confirmed!", order.OrderID),
		orderConfirmationHTML(order.OrderID, order.CustomerName, req.Cart, totals))

	c.JSON(http.StatusCreated, gin.H{
		"success":              true,
		"order_id":             order.OrderID,
		"totals":               totals,
		"estimated_ready_time": order.EstimatedReadyTime,
		"preparation_minutes":  int(prep.Minutes()),
	})
}

// ConfirmOnlineOrder totals the cart and persists a delivery order.
func ConfirmOnlineOrder(c *gin.Context) {
	var req OnlineOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing order information"})
		return
	}

	totals := engine.Totals(req.Cart)

	order := models.OnlineOrder{
		OrderID:      "BNB-ONLINE-" + strings.ToUpper(uuid.NewString()[:8]),
		CustomerName: middleware.GetName(c),
		UserEmail:    middleware.GetEmail(c),
		Address:      req.Address,
		Items:        req.Cart,
		Total:        totals.Total,
	}

	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	go Mail.SendHTML(order.UserEmail,
		fmt.Sprintf("Your Brew & Bite Online Order (%s) is Confirmed!", order.OrderID),
		orderConfirmationHTML(order.OrderID, order.CustomerName, req.Cart, totals))

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"order_id": order.OrderID,
		"totals":   totals,
	})
}

// Receipt looks an order up by its public id, online orders first, and
// recomputes the totals from the stored lines.
func Receipt(c *gin.Context) {
	orderID := c.Param("orderID")

	var online models.OnlineOrder
	if err := config.DB.Where("order_id = ?", orderID).First(&online).Error; err == nil {
		totals := engine.Totals(online.Items)
		c.JSON(http.StatusOK, gin.H{"order": online, "totals": totals, "order_type": "Online Delivery"})
		return
	}

	var dineIn models.DineInOrder
	if err := config.DB.Where("order_id = ?", orderID).First(&dineIn).Error; err == nil {
		totals := engine.Totals(dineIn.Items)
		c.JSON(http.StatusOK, gin.H{"order": dineIn, "totals": totals, "order_type": "Dine-In"})
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
}

// KitchenNotifications sweeps the dine-in orders: anything past its estimated
// ready time moves preparing→ready, then every ready order emits one customer
// notification and moves ready→notified.
func KitchenNotifications(c *gin.Context) {
	now := time.Now().UTC()

	var due []models.DineInOrder
	config.DB.Where("status = ? AND estimated_ready_time <= ?", models.StatusPreparing, now).Find(&due)
	for _, order := range due {
		if err := statemachine.CanTransition(order.Status, models.StatusReady, statemachine.ActorKitchen); err != nil {
			continue
		}
		config.DB.Model(&order).Update("status", models.StatusReady)
	}

	var ready []models.DineInOrder
	config.DB.Where("status = ?", models.StatusReady).Find(&ready)

	notifications := make([]gin.H, 0, len(ready))
	for _, order := range ready {
		if err := statemachine.CanTransition(order.Status, models.StatusNotified, statemachine.ActorSystem); err != nil {
			continue
		}
		notifications = append(notifications, gin.H{
			"order_id": order.OrderID,
			"message":  fmt.Sprintf("Order %s for %s is ready!", order.OrderID, order.CustomerName),
		})
		config.DB.Model(&order).Update("status", models.StatusNotified)
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// GetStateMachineInfo returns the dine-in order lifecycle for documentation
func GetStateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   info,
		"terminal_states": []models.OrderStatus{models.StatusNotified},
		"description":     "Dine-In Order Kitchen Lifecycle",
	})
}

func orderConfirmationHTML(orderID, customerName string, cart []models.CartLine, totals engine.OrderTotals) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Thank you, %s!</h2>", customerName)
	fmt.Fprintf(&b, "<p>Your order <strong>%s</strong> is confirmed.</p>", orderID)
	b.WriteString("<table><tr><th>Item</th><th>Qty</th><th>Price</th></tr>")
	for _, line := range cart {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%d</td><td>₹%d</td></tr>", line.Name, line.Quantity, line.Price)
	}
	b.WriteString("</table>")
	fmt.Fprintf(&b, "<p>Subtotal: ₹%d<br>GST: ₹%d<br><strong>Total: ₹%d</strong></p>", totals.Subtotal, totals.GST, totals.Total)
	fmt.Fprintf(&b, "<p><a href=\"/api/receipt/%s\">View your receipt</a></p>", orderID)
	b.WriteString("<p>- The Brew &amp; Bite Team</p>")
	return b.String()
}
